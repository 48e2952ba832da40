package directory

import (
	"strings"

	"github.com/elc-tools/pubrec/internal/domain"
)

// Filter narrows a snapshot for the browse view. Empty fields are ignored.
type Filter struct {
	County   string
	City     string
	Dept     string
	Contains string // case-insensitive substring over contact and department names
	Verified *bool
}

// Filter returns the snapshot rows passing every set criterion, preserving
// directory order. County, city, and department compare through normalized
// keys so "Lee County" finds rows stored as "Lee".
func (s *Snapshot) Filter(f Filter) []domain.ContactRow {
	countyKey := domain.NormalizeCounty(f.County)
	cityKey := domain.NormalizeCity(f.City)
	var dept domain.DeptType
	if f.Dept != "" {
		dept = domain.NormalizeDeptType(f.Dept)
	}
	contains := strings.ToLower(strings.TrimSpace(f.Contains))

	var out []domain.ContactRow
	for _, r := range s.Rows {
		if countyKey != "" && r.CountyKey != countyKey {
			continue
		}
		if cityKey != "" && r.CityKey != cityKey {
			continue
		}
		if dept != "" && r.DeptType != dept {
			continue
		}
		if f.Verified != nil && r.Verified != *f.Verified {
			continue
		}
		if contains != "" &&
			!strings.Contains(strings.ToLower(r.Contact), contains) &&
			!strings.Contains(strings.ToLower(r.DeptName), contains) {
			continue
		}
		out = append(out, r)
	}
	return out
}
