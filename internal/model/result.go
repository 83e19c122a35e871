package model

// Result is the durable output of one roster extraction pass.
// The index views are derived from Records and are never mutated
// independently; Members serializes sorted, everything else preserves
// document (page/line) order. Result carries no timestamps or counters
// beyond the scan itself, so identical input serializes identically.
type Result struct {
	Source string `json:"source"` // Path or URL that was scanned

	Committees        map[string][]string            `json:"committees"`         // committee -> member keys, main level only
	Subcommittees     map[string]map[string][]string `json:"subcommittees"`      // committee -> subcommittee -> member keys
	Members           []string                       `json:"members"`            // Sorted union of all member keys
	MemberAssignments map[string][]Assignment        `json:"member_assignments"` // member key -> assignments in page order

	Records []Assignment `json:"records"` // Every assignment in production order

	PagesScanned int `json:"pages_scanned"`
	PagesEmpty   int `json:"pages_empty"` // Pages with no extractable text

	Signals []Signal `json:"signals,omitempty"` // Data-quality diagnostics
}

// TotalSubcommittees counts subcommittees across all committees
func (r *Result) TotalSubcommittees() int {
	n := 0
	for _, subs := range r.Subcommittees {
		n += len(subs)
	}
	return n
}

// TotalAssignments counts assignments across all members
func (r *Result) TotalAssignments() int {
	return len(r.Records)
}
