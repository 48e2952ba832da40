package letter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/elc-tools/pubrec/internal/domain"
)

// placeholderRe matches {name} slots in template text. The placeholder set
// is fixed at authoring time; names are lowercase with underscores.
var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Context supplies the values substituted into a template.
type Context map[string]string

// Placeholders lists the distinct placeholder names a template references,
// sorted.
func Placeholders(t Template) []string {
	seen := make(map[string]bool)
	for _, text := range []string{t.Subject, t.Body} {
		for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
			seen[m[1]] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render substitutes the context into the template's subject and body.
// A placeholder missing from the context is a programming error — the
// placeholder set is known at authoring time — so it fails loudly rather
// than rendering a blank.
func Render(t Template, ctx Context) (subject, body string, err error) {
	var missing []string
	for _, name := range Placeholders(t) {
		if _, ok := ctx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", "", fmt.Errorf("render template: context missing placeholders %v", missing)
	}

	substitute := func(text string) string {
		return placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
			return ctx[m[1:len(m)-1]]
		})
	}
	return substitute(t.Subject), substitute(t.Body), nil
}

// Letter is one rendered request letter with its recipients.
type Letter struct {
	Dept    domain.DeptType `json:"dept,omitempty"`
	Subject string          `json:"subject"`
	Body    string          `json:"body"`
	Emails  []string        `json:"emails,omitempty"`
}

// BuildContext assembles the base placeholder context for a resolution.
// Empty query fields render as empty strings; that is a user choice, not a
// missing-key defect.
func BuildContext(county, address, parcelID, project string) Context {
	return Context{
		"county":  county,
		"address": address,
		"apn":     parcelID,
		"project": project,
	}
}

// RenderAll renders the per-department letters for every templated
// department present in byDept, plus the aggregate letter, using the given
// organization's set.
func RenderAll(org string, byDept map[domain.DeptType][]domain.ContactRow, base Context) ([]Letter, Letter, error) {
	set, ok := SetFor(org)
	if !ok {
		return nil, Letter{}, fmt.Errorf("unknown template set %q", org)
	}

	var letters []Letter
	aggregate := Context{}
	for k, v := range base {
		aggregate[k] = v
	}

	var allRows []domain.ContactRow
	for _, dept := range domain.DeptTypes {
		rows := byDept[dept]
		emails := domain.AggregateEmails(rows)
		aggregate[string(dept)+"_emails"] = strings.Join(emails, ", ")
		allRows = append(allRows, rows...)

		if len(rows) == 0 {
			continue
		}
		subject, body, err := Render(set.ByDept[dept], base)
		if err != nil {
			return nil, Letter{}, fmt.Errorf("department %s: %w", dept, err)
		}
		letters = append(letters, Letter{Dept: dept, Subject: subject, Body: body, Emails: emails})
	}

	aggregate["all_emails"] = strings.Join(domain.AggregateEmails(allRows), ", ")

	subject, body, err := Render(set.Aggregate, aggregate)
	if err != nil {
		return nil, Letter{}, fmt.Errorf("aggregate: %w", err)
	}
	agg := Letter{Subject: subject, Body: body, Emails: domain.AggregateEmails(allRows)}
	return letters, agg, nil
}
