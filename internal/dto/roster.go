package dto

// RowError describes why a single import row was skipped.
// Row numbers are 1-based over data rows (the header row is not counted).
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarises a bulk schedule import.
type ImportResult struct {
	Processed int        `json:"processed"`
	Applied   int        `json:"applied"`
	Skipped   int        `json:"skipped"`
	Errors    []RowError `json:"errors"`
}
