package model

import "strings"

// Group is the majority/minority party grouping of an assignment
type Group string

const (
	GroupMajority Group = "Majority"
	GroupMinority Group = "Minority"
)

// Member identifies a person within a roster document.
// Identity is the (normalized name, state) pair: two records carrying the
// same pair refer to the same person regardless of committee.
type Member struct {
	Name  string `json:"name"`  // Whitespace-normalized, punctuation preserved
	State string `json:"state"` // 2-letter state code
}

// Key returns the canonical "Name, ST" member key used across all indexes
func (m Member) Key() string {
	return m.Name + ", " + m.State
}

// ParseMemberKey splits a canonical member key back into its parts
func ParseMemberKey(key string) (Member, bool) {
	idx := strings.LastIndex(key, ", ")
	if idx < 0 || len(key)-idx != 4 {
		return Member{}, false
	}
	return Member{Name: key[:idx], State: key[idx+2:]}, true
}

// UnrankedPosition is the rank sentinel for members listed without a number
const UnrankedPosition = 0

// Assignment is one committee or subcommittee membership extracted from the
// roster. Assignments are immutable once produced by the parser.
type Assignment struct {
	Committee    string `json:"committee"`              // Main committee at time of parse
	Subcommittee string `json:"subcommittee,omitempty"` // Set only inside a subcommittee section
	Rank         int    `json:"rank"`                   // Explicit numbered position, 0 = unranked
	Page         int    `json:"page"`                   // 1-based source page
	Group        Group  `json:"group"`                  // Majority/Minority attribution
	Member       Member `json:"member"`
	SourceLine   string `json:"source_line"` // Raw line kept for auditability
}
