// Package letter holds the fixed public-records request templates and the
// placeholder renderer that fills them per query.
package letter

import (
	"fmt"
	"sort"

	"github.com/elc-tools/pubrec/internal/domain"
)

// Template is one request letter with named {placeholder} slots.
type Template struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Set is one organization's full complement of templates: one per templated
// department plus the aggregate letter covering all departments.
type Set struct {
	Org       string                       `json:"org"`
	ByDept    map[domain.DeptType]Template `json:"by_dept"`
	Aggregate Template                     `json:"aggregate"`
}

// sets holds the compiled-in template sets, keyed by organization id. Both
// organizations define the same department keys and the same placeholder
// sets; ValidateSets enforces that at startup.
var sets = map[string]Set{
	"elc": {
		Org: "elc",
		ByDept: map[domain.DeptType]Template{
			domain.DeptBuilding: {
				Subject: "Public Records Request — Building Department — {address}",
				Body: "To the Building Department, {county}:\n\n" +
					"Pursuant to the state public records act, we request copies of all building permits, " +
					"certificates of occupancy, code enforcement actions, and inspection records for the " +
					"property at {address} (parcel {apn}).\n\n" +
					"Please reference our project number {project} in any correspondence. We will pay " +
					"reasonable duplication costs; please advise before exceeding $50.\n\n" +
					"Thank you for your assistance.",
			},
			domain.DeptPlanning: {
				Subject: "Public Records Request — Planning & Zoning — {address}",
				Body: "To the Planning Department, {county}:\n\n" +
					"We request copies of all zoning determinations, variances, conditional use permits, " +
					"and land use records for the property at {address} (parcel {apn}).\n\n" +
					"Please reference project {project}. We will pay reasonable duplication costs.\n\n" +
					"Thank you for your assistance.",
			},
			domain.DeptEnvironmental: {
				Subject: "Public Records Request — Environmental Records — {address}",
				Body: "To the Environmental Department, {county}:\n\n" +
					"We request copies of all environmental permits, storage tank registrations, spill or " +
					"discharge reports, and site assessment records for the property at {address} " +
					"(parcel {apn}).\n\n" +
					"Please reference project {project}. We will pay reasonable duplication costs.\n\n" +
					"Thank you for your assistance.",
			},
			domain.DeptFire: {
				Subject: "Public Records Request — Fire Department — {address}",
				Body: "To the Fire Department, {county}:\n\n" +
					"We request copies of all fire incident reports, hazardous materials records, and " +
					"underground/aboveground storage tank permits for the property at {address} " +
					"(parcel {apn}).\n\n" +
					"Please reference project {project}. We will pay reasonable duplication costs.\n\n" +
					"Thank you for your assistance.",
			},
		},
		Aggregate: Template{
			Subject: "Public Records Request — All Departments — {address}",
			Body: "Public records request for the property at {address}, {county} " +
				"(parcel {apn}, project {project}).\n\n" +
				"Building: {building_emails}\n" +
				"Planning: {planning_emails}\n" +
				"Environmental: {environmental_emails}\n" +
				"Fire: {fire_emails}\n\n" +
				"All recipients: {all_emails}\n\n" +
				"Each department is asked for the records described in the individual letters " +
				"accompanying this request.",
		},
	},
	"coastal": {
		Org: "coastal",
		ByDept: map[domain.DeptType]Template{
			domain.DeptBuilding: {
				Subject: "Records Request (Building) — {address} — Project {project}",
				Body: "Dear Records Custodian, Building Department, {county}:\n\n" +
					"Under the public records law we respectfully request building permit files, " +
					"inspection histories, and open code cases for {address}, parcel {apn}.\n\n" +
					"Kindly cite project {project} in your response.",
			},
			domain.DeptPlanning: {
				Subject: "Records Request (Planning) — {address} — Project {project}",
				Body: "Dear Records Custodian, Planning Department, {county}:\n\n" +
					"Under the public records law we respectfully request zoning files, variance " +
					"records, and land use histories for {address}, parcel {apn}.\n\n" +
					"Kindly cite project {project} in your response.",
			},
			domain.DeptEnvironmental: {
				Subject: "Records Request (Environmental) — {address} — Project {project}",
				Body: "Dear Records Custodian, Environmental Department, {county}:\n\n" +
					"Under the public records law we respectfully request environmental permits, tank " +
					"registrations, and contamination records for {address}, parcel {apn}.\n\n" +
					"Kindly cite project {project} in your response.",
			},
			domain.DeptFire: {
				Subject: "Records Request (Fire) — {address} — Project {project}",
				Body: "Dear Records Custodian, Fire Department, {county}:\n\n" +
					"Under the public records law we respectfully request incident reports and " +
					"hazardous material records for {address}, parcel {apn}.\n\n" +
					"Kindly cite project {project} in your response.",
			},
		},
		Aggregate: Template{
			Subject: "Records Request (All Departments) — {address} — Project {project}",
			Body: "Combined public records request for {address}, {county}, parcel {apn}, " +
				"project {project}.\n\n" +
				"Building recipients: {building_emails}\n" +
				"Planning recipients: {planning_emails}\n" +
				"Environmental recipients: {environmental_emails}\n" +
				"Fire recipients: {fire_emails}\n" +
				"Combined list: {all_emails}",
		},
	},
}

// SetFor returns the template set for an organization id.
func SetFor(org string) (Set, bool) {
	s, ok := sets[org]
	return s, ok
}

// Orgs lists the available organization ids, sorted.
func Orgs() []string {
	out := make([]string, 0, len(sets))
	for org := range sets {
		out = append(out, org)
	}
	sort.Strings(out)
	return out
}

// ValidateSets checks at startup that every organization defines the same
// department templates and that corresponding templates use identical
// placeholder keys. A mismatch is a build-time authoring defect.
func ValidateSets() error {
	reference, ok := sets["elc"]
	if !ok {
		return fmt.Errorf("template set %q missing", "elc")
	}

	for org, s := range sets {
		for _, dept := range domain.DeptTypes {
			if _, ok := s.ByDept[dept]; !ok {
				return fmt.Errorf("template set %q missing department %q", org, dept)
			}
		}
		for dept, tmpl := range s.ByDept {
			want := placeholderSet(reference.ByDept[dept])
			got := placeholderSet(tmpl)
			if !equalKeys(want, got) {
				return fmt.Errorf("template set %q department %q placeholders %v do not match reference %v",
					org, dept, keys(got), keys(want))
			}
		}
		want := placeholderSet(reference.Aggregate)
		got := placeholderSet(s.Aggregate)
		if !equalKeys(want, got) {
			return fmt.Errorf("template set %q aggregate placeholders %v do not match reference %v",
				org, keys(got), keys(want))
		}
	}
	return nil
}

func placeholderSet(t Template) map[string]bool {
	set := make(map[string]bool)
	for _, name := range Placeholders(t) {
		set[name] = true
	}
	return set
}

func equalKeys(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
