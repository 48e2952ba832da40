package domain

// DeptType classifies a directory row by the department that answers
// records requests.
type DeptType string

const (
	DeptBuilding      DeptType = "building"
	DeptPlanning      DeptType = "planning"
	DeptEnvironmental DeptType = "environmental"
	DeptFire          DeptType = "fire"
	DeptOther         DeptType = "other"
)

// DeptTypes lists the four templated departments in rendering order.
// DeptOther rows are matched and returned but have no dedicated template.
var DeptTypes = []DeptType{DeptBuilding, DeptPlanning, DeptEnvironmental, DeptFire}

// NormalizeDeptType maps a free-text department type cell to a DeptType.
// Unrecognized or empty values map to DeptOther.
func NormalizeDeptType(raw string) DeptType {
	switch normalize(raw) {
	case "building", "building dept", "building department", "permits", "permitting":
		return DeptBuilding
	case "planning", "planning dept", "planning department", "zoning", "planning & zoning", "planning and zoning":
		return DeptPlanning
	case "environmental", "environment", "environmental health", "environmental services":
		return DeptEnvironmental
	case "fire", "fire dept", "fire department", "fire rescue", "fire marshal":
		return DeptFire
	default:
		return DeptOther
	}
}

// ContactRow is one entry of the jurisdiction contact directory. Rows are
// immutable once loaded; a directory snapshot is a read-only view for the
// lifetime of one load cycle. Uniqueness is not enforced — multiple rows may
// share (county, city, dept type) and are all simultaneously applicable.
//
// All fields are comparable so full-row equality can deduplicate matches
// while letting two distinct contacts at the same city/department survive.
type ContactRow struct {
	County          string   `json:"county"`
	City            string   `json:"city"`
	DeptType        DeptType `json:"dept_type"`
	DeptName        string   `json:"dept_name"`
	Contact         string   `json:"contact,omitempty"`
	Title           string   `json:"title,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Emails          string   `json:"emails,omitempty"` // comma-separated, as stored in the sheet
	PortalURL       string   `json:"portal_url,omitempty"`
	PreferredMethod string   `json:"preferred_method,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Verified        bool     `json:"verified"`
	DateVerified    string   `json:"date_verified,omitempty"`

	// Normalized lookup keys, precomputed at load time so per-query
	// filtering never re-normalizes the whole directory.
	CountyKey string `json:"-"`
	CityKey   string `json:"-"`
}

// WithKeys returns a copy of the row with its normalized county and city
// keys populated. The loader calls this once per row at load time.
func (r ContactRow) WithKeys() ContactRow {
	r.CountyKey = NormalizeCounty(r.County)
	r.CityKey = NormalizeCity(r.City)
	return r
}
