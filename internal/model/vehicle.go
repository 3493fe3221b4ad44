package model

// Vehicle represents a single catalog entry.
// The catalog is loaded once at startup and never mutated; Price is `any`
// because the backend may return either a number or a literal like "N/A",
// and the presentation transform replaces numbers with formatted strings.
type Vehicle struct {
	ID       string   `json:"id"`
	Make     string   `json:"make"`
	Model    string   `json:"model"`
	Year     int      `json:"year"`
	Price    any      `json:"price"`
	Type     string   `json:"type,omitempty"`
	Features []string `json:"features,omitempty"`
	Image    string   `json:"image,omitempty"`
}

// CompareResult is the UI-ready outcome of a comparison operation.
// A degraded result carries an empty Cars slice and no verdict.
type CompareResult struct {
	Cars    []Vehicle `json:"cars"`
	Verdict string    `json:"verdict,omitempty"`
}
