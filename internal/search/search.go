// Package search implements the workspace-wide quick search used by the
// command palette: case-insensitive substring matching with a
// subsequence fallback for sloppy typing.
package search

import (
	"strings"

	"simplecrm/internal/domain"
)

const maxPerCategory = 5

// Result is a single search hit, tagged with the entity category so the
// client can route the user to the right tab.
type Result struct {
	Category string `json:"category"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

type Results struct {
	Leads     []Result `json:"leads"`
	Customers []Result `json:"customers"`
	Deals     []Result `json:"deals"`
}

// Global searches leads, customers and deals for the query. Queries
// shorter than two characters return nothing; a leading +91 country
// prefix is stripped so pasted phone numbers still match. Each category
// is capped at five hits.
func Global(query string, leads []domain.Lead, customers []domain.Customer, deals []domain.Deal) Results {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimPrefix(q, "+91")
	q = strings.TrimSpace(q)

	var out Results
	if len([]rune(q)) < 2 {
		return out
	}

	for _, l := range leads {
		if len(out.Leads) >= maxPerCategory {
			break
		}
		if matchesAny(q, l.Name, l.Company, l.Phone, l.Email, l.City) {
			out.Leads = append(out.Leads, Result{
				Category: "leads",
				ID:       l.ID,
				Title:    l.Name,
				Subtitle: l.Company,
			})
		}
	}
	for _, c := range customers {
		if len(out.Customers) >= maxPerCategory {
			break
		}
		if matchesAny(q, c.Name, c.Company, c.Phone) {
			out.Customers = append(out.Customers, Result{
				Category: "customers",
				ID:       c.ID,
				Title:    c.Name,
				Subtitle: c.Company,
			})
		}
	}
	for _, d := range deals {
		if len(out.Deals) >= maxPerCategory {
			break
		}
		if matchesAny(q, d.Title, d.CustomerName) {
			out.Deals = append(out.Deals, Result{
				Category: "deals",
				ID:       d.ID,
				Title:    d.Title,
				Subtitle: d.CustomerName,
			})
		}
	}
	return out
}

func matchesAny(q string, fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		lower := strings.ToLower(f)
		if strings.Contains(lower, q) || isSubsequence(q, lower) {
			return true
		}
	}
	return false
}

// isSubsequence reports whether every rune of q appears in s in order,
// not necessarily adjacent. "jhn" matches "john".
func isSubsequence(q, s string) bool {
	runes := []rune(s)
	i := 0
	for _, qr := range q {
		found := false
		for ; i < len(runes); i++ {
			if runes[i] == qr {
				found = true
				i++
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
