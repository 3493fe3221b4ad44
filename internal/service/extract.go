package service

import (
	"regexp"
	"strings"

	"vehicleagent/internal/repository"
)

var standaloneNumbers = regexp.MustCompile(`\b\d+\b`)

// ExtractVehicles maps free text to an ordered, deduplicated list of
// catalog ids, capped at limit. Precedence is fixed: explicit numeric ids
// first, then model-name substrings, then make-name substrings. The order
// encodes precedence, not relevance.
func ExtractVehicles(text string, catalog *repository.Catalog, limit int) []string {
	lower := strings.ToLower(text)

	matched := []string{}
	seen := map[string]bool{}

	// Explicit ids win outright: if the text names enough of them, the
	// model and make scans never run.
	for _, token := range standaloneNumbers.FindAllString(lower, -1) {
		if _, ok := catalog.FindByID(token); ok && !seen[token] {
			matched = append(matched, token)
			seen[token] = true
		}
	}
	if len(matched) >= limit {
		return matched[:limit]
	}

	for _, v := range catalog.All() {
		if strings.Contains(lower, strings.ToLower(v.Model)) && !seen[v.ID] {
			matched = append(matched, v.ID)
			seen[v.ID] = true
		}
	}

	if len(matched) < limit {
		for _, v := range catalog.All() {
			if !strings.Contains(lower, strings.ToLower(v.Make)) || seen[v.ID] {
				continue
			}
			// Skip a make-level match when a vehicle of the same make is
			// already in the list, so one brand cannot crowd out the other
			// side of a two-car comparison.
			if hasMake(catalog, matched, v.Make) {
				continue
			}
			matched = append(matched, v.ID)
			seen[v.ID] = true
		}
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func hasMake(catalog *repository.Catalog, ids []string, mk string) bool {
	for _, id := range ids {
		if v, ok := catalog.FindByID(id); ok && v.Make == mk {
			return true
		}
	}
	return false
}
