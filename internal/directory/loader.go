// Package directory loads the jurisdiction contact directory from an XLSX
// workbook and serves it as an immutable in-memory snapshot.
package directory

import (
	"fmt"
	"strings"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/elc-tools/pubrec/internal/domain"
)

// Canonical column names. The workbook's free-text headers are mapped to
// these through headerAliases.
const (
	fieldCounty          = "county"
	fieldCity            = "city"
	fieldDeptType        = "dept_type"
	fieldDeptName        = "dept_name"
	fieldContact         = "contact"
	fieldTitle           = "title"
	fieldPhone           = "phone"
	fieldEmail           = "email"
	fieldPortalURL       = "portal_url"
	fieldPreferredMethod = "preferred_method"
	fieldNotes           = "notes"
	fieldVerified        = "verified"
	fieldDateVerified    = "date_verified"
)

// headerAliases maps each canonical field to the header spellings accepted
// for it, in preference order. Matching is case-insensitive on trimmed
// headers and happens once per load.
var headerAliases = map[string][]string{
	fieldCounty:          {"county"},
	fieldCity:            {"city", "city/municipality", "municipality"},
	fieldDeptType:        {"department type", "dept type", "dept"},
	fieldDeptName:        {"department name", "dept name", "department"},
	fieldContact:         {"contact", "contact name", "name"},
	fieldTitle:           {"title", "role", "title/role"},
	fieldPhone:           {"phone", "phone number"},
	fieldEmail:           {"email", "emails", "email(s)"},
	fieldPortalURL:       {"public records portal url", "portal url", "portal"},
	fieldPreferredMethod: {"preferred method", "preferred contact method"},
	fieldNotes:           {"notes", "comments"},
	fieldVerified:        {"verified"},
	fieldDateVerified:    {"date verified", "verified date"},
}

// requiredFields must all resolve to a workbook column for the directory to
// be usable.
var requiredFields = []string{fieldCounty, fieldCity, fieldDeptType, fieldDeptName}

// LoadReport describes one load cycle's outcome.
type LoadReport struct {
	SheetName      string    `json:"sheet_name"`
	RowCount       int       `json:"row_count"`
	SkippedRows    int       `json:"skipped_rows"`
	MissingColumns []string  `json:"missing_columns,omitempty"`
	LoadedAt       time.Time `json:"loaded_at"`
}

// Snapshot is a read-only directory view. Once built it is never mutated;
// reloads swap in a fresh snapshot atomically.
type Snapshot struct {
	Rows   []domain.ContactRow
	Report LoadReport
}

// Usable reports whether the snapshot was built from a sheet containing all
// required columns. An unusable snapshot is a distinct state from a usable
// but empty one.
func (s *Snapshot) Usable() bool {
	return len(s.Report.MissingColumns) == 0
}

// Load reads the workbook at path and builds a directory snapshot.
// A missing or unreadable file is an error; missing required columns are not —
// they yield an empty, correctly shaped snapshot with the missing columns
// listed in the report.
func Load(path string, sheetNames []string) (*Snapshot, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return fromFile(file, sheetNames)
}

// LoadBytes builds a snapshot from in-memory workbook bytes.
func LoadBytes(data []byte, sheetNames []string) (*Snapshot, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return fromFile(file, sheetNames)
}

func fromFile(file *xlsx.File, sheetNames []string) (*Snapshot, error) {
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	sheetIdx := pickSheet(file, sheetNames)

	sheetData, err := file.ToSlice()
	if err != nil {
		return nil, fmt.Errorf("read workbook data: %w", err)
	}
	rows := sheetData[sheetIdx]

	snap := &Snapshot{
		Report: LoadReport{
			SheetName: file.Sheets[sheetIdx].Name,
			LoadedAt:  clock.Now(),
		},
	}

	if len(rows) == 0 {
		snap.Report.MissingColumns = append([]string{}, requiredFields...)
		return snap, nil
	}

	columns := mapHeaders(rows[0])
	for _, f := range requiredFields {
		if _, ok := columns[f]; !ok {
			snap.Report.MissingColumns = append(snap.Report.MissingColumns, f)
		}
	}
	if len(snap.Report.MissingColumns) > 0 {
		return snap, nil
	}

	for _, cells := range rows[1:] {
		row := parseRow(cells, columns)
		if row.County == "" && row.City == "" && row.DeptName == "" {
			snap.Report.SkippedRows++
			continue
		}
		snap.Rows = append(snap.Rows, row.WithKeys())
	}
	snap.Report.RowCount = len(snap.Rows)
	return snap, nil
}

// pickSheet returns the index of the first sheet whose name matches the
// preference list case-insensitively, else 0.
func pickSheet(file *xlsx.File, sheetNames []string) int {
	for _, want := range sheetNames {
		for i, sheet := range file.Sheets {
			if strings.EqualFold(strings.TrimSpace(sheet.Name), strings.TrimSpace(want)) {
				return i
			}
		}
	}
	return 0
}

// mapHeaders resolves the header row to canonical field → column index.
// For each canonical field the first alias present wins.
func mapHeaders(headers []string) map[string]int {
	byHeader := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, exists := byHeader[h]; !exists {
			byHeader[h] = i
		}
	}

	columns := make(map[string]int, len(headerAliases))
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			if idx, ok := byHeader[alias]; ok {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}

func parseRow(cells []string, columns map[string]int) domain.ContactRow {
	get := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	return domain.ContactRow{
		County:          get(fieldCounty),
		City:            get(fieldCity),
		DeptType:        domain.NormalizeDeptType(get(fieldDeptType)),
		DeptName:        get(fieldDeptName),
		Contact:         get(fieldContact),
		Title:           get(fieldTitle),
		Phone:           get(fieldPhone),
		Emails:          get(fieldEmail),
		PortalURL:       get(fieldPortalURL),
		PreferredMethod: get(fieldPreferredMethod),
		Notes:           get(fieldNotes),
		Verified:        parseBool(get(fieldVerified)),
		DateVerified:    get(fieldDateVerified),
	}
}

// parseBool accepts the spellings the sheets actually use for "yes".
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}
