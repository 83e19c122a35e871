package scan

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lvargas/rosterscan/internal/model"
)

// LineKind is the closed set of structural roles a roster line can play.
// The state machine dispatches on this tag instead of re-testing string
// patterns at every layer.
type LineKind int

const (
	// LineBlank is an empty or whitespace-only line
	LineBlank LineKind = iota
	// LineSubcommitteeSection opens a "SUBCOMMITTEES OF THE COMMITTEE ON X" section
	LineSubcommitteeSection
	// LineHeader is an all-caps committee or subcommittee name
	LineHeader
	// LineNoise is all-caps boilerplate (masthead, ratios, section titles)
	LineNoise
	// LineCandidate is any other non-empty line, forwarded to the member parser
	LineCandidate
)

// LineClass is a classified line. Committee is set for subcommittee-section
// headers (the owning committee), Header for committee/subcommittee headers,
// Group for noise lines that double as a majority/minority marker.
type LineClass struct {
	Kind      LineKind
	Committee string
	Header    string
	Group     model.Group
}

var (
	// subcommitteeSectionPattern matches section headers like
	// "SUBCOMMITTEES OF THE COMMITTEE ON RULES".
	subcommitteeSectionPattern = regexp.MustCompile(`(?i)^SUBCOMMITTEES?\s+OF\s+THE\s+COMMITTEE\s+ON`)

	// owningCommitteePattern extracts the committee name from a
	// subcommittee-section header.
	owningCommitteePattern = regexp.MustCompile(`(?i)\bON\s+(.+)$`)
)

// noisePhrases are all-caps boilerplate fragments that carry no roster
// structure: document title, masthead, ratio blocks, party section markers.
var noisePhrases = []string{
	"STANDING COMMITTEES",
	"SELECT COMMITTEES",
	"JOINT COMMITTEES",
	"ALPHABETICAL LIST",
	"HOUSE OF REPRESENTATIVES",
	"ONE HUNDRED",
	"CONGRESS",
	"MAJORITY",
	"MINORITY",
	"DEMOCRATS",
	"REPUBLICANS",
	"RATIO",
	"WASHINGTON",
	"CONTENTS",
	"PREPARED UNDER",
}

// Classifier decides the structural role of each roster line
type Classifier struct{}

// NewClassifier creates a new line classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify classifies a single line. The checks are ordered: the
// subcommittee-section pattern and the noise phrases are themselves
// all-caps, so they must win before the generic header check.
func (c *Classifier) Classify(line string) LineClass {
	line = strings.TrimSpace(line)

	if line == "" {
		return LineClass{Kind: LineBlank}
	}

	if subcommitteeSectionPattern.MatchString(line) {
		name := ""
		if m := owningCommitteePattern.FindStringSubmatch(line); m != nil {
			name = strings.TrimSpace(m[1])
		}
		return LineClass{Kind: LineSubcommitteeSection, Committee: name}
	}

	// All-caps lines longer than 3 characters are headers unless they are
	// known boilerplate. Short all-caps fragments (state codes, column
	// debris) fall through to the member parser.
	if isUpper(line) && len(line) > 3 && !strings.HasPrefix(line, "SUBCOMMITTEE") {
		for _, phrase := range noisePhrases {
			if strings.Contains(line, phrase) {
				return LineClass{Kind: LineNoise, Group: groupMarker(line)}
			}
		}
		return LineClass{Kind: LineHeader, Header: line}
	}

	return LineClass{Kind: LineCandidate}
}

// groupMarker returns the majority/minority group a noise line announces,
// or "" if it is plain boilerplate.
func groupMarker(line string) model.Group {
	switch {
	case strings.Contains(line, "MAJORITY"):
		return model.GroupMajority
	case strings.Contains(line, "MINORITY"):
		return model.GroupMinority
	default:
		return ""
	}
}

// isUpper reports whether the line contains at least one letter and no
// lower-case letters, matching the uppercase test the roster's typography
// conventions rely on.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
