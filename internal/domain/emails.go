package domain

import (
	"sort"
	"strings"
)

// SplitEmails splits a comma-separated email cell into trimmed, non-empty
// addresses, preserving the cell's order.
func SplitEmails(cell string) []string {
	var out []string
	for _, e := range strings.Split(cell, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// AggregateEmails collects the sorted, de-duplicated union of the rows'
// email lists. Deduplication is case-insensitive; the first-seen spelling
// wins.
func AggregateEmails(rows []ContactRow) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		for _, e := range SplitEmails(r.Emails) {
			key := strings.ToLower(e)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, e)
		}
	}
	sort.Strings(out)
	return out
}

// PortalURLs collects the non-empty portal URLs of the rows, de-duplicated,
// preserving row order.
func PortalURLs(rows []ContactRow) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		u := strings.TrimSpace(r.PortalURL)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
