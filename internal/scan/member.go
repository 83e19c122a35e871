package scan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lvargas/rosterscan/internal/model"
)

var (
	// numberedEntryPattern matches ranked entries like "3. Pete Sessions, TX".
	// Text extraction may concatenate several onto one line, so every
	// occurrence in the line is taken.
	numberedEntryPattern = regexp.MustCompile(`(\d+)\.\s*([A-Za-z\s.\-']+?),\s*([A-Z]{2})`)

	// unnumberedEntryPattern matches unranked "Name, ST" entries, optionally
	// followed by a qualifier clause (", Chairman") that is ignored.
	// Subcommittee rosters pack two of these per line with no delimiter
	// beyond the state code.
	unnumberedEntryPattern = regexp.MustCompile(`([A-Z][A-Za-z\s.\-']+?),\s*([A-Z]{2})(?:\s*,\s*[A-Za-z]+)?`)

	// multiSpacePattern collapses internal runs of whitespace in names
	multiSpacePattern = regexp.MustCompile(`\s+`)

	// caseBreakPattern finds lower-to-upper transitions where the text
	// extraction dropped the space between two concatenated words.
	caseBreakPattern = regexp.MustCompile(`([a-z])([A-Z])`)
)

// MemberParser extracts assignment records from candidate lines
type MemberParser struct{}

// NewMemberParser creates a new member-line parser
func NewMemberParser() *MemberParser {
	return &MemberParser{}
}

// Parse applies the extraction rules to one candidate line and returns the
// assignments it yields, in order of appearance. Most lines match neither
// rule and yield nothing; that is the normal outcome, not a failure.
//
// Rule order is exclusive: numbered entries win, and the unnumbered rule is
// only attempted inside an active subcommittee roster.
func (p *MemberParser) Parse(line string, state *State, page int) []model.Assignment {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if records := p.parseNumbered(line, state, page); len(records) > 0 {
		return records
	}

	if state.CurrentSubcommittee != "" {
		return p.parseUnnumbered(line, state, page)
	}

	return nil
}

// parseNumbered extracts ranked entries, one record per numbered match.
// The group comes from the last-seen MAJORITY/MINORITY marker.
func (p *MemberParser) parseNumbered(line string, state *State, page int) []model.Assignment {
	matches := numberedEntryPattern.FindAllStringSubmatch(line, -1)
	if matches == nil {
		return nil
	}

	records := make([]model.Assignment, 0, len(matches))
	for _, m := range matches {
		rank, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		records = append(records, model.Assignment{
			Committee:    state.CurrentCommittee,
			Subcommittee: state.CurrentSubcommittee,
			Rank:         rank,
			Page:         page,
			Group:        state.CurrentGroup,
			Member: model.Member{
				Name:  NormalizeName(m[2]),
				State: m[3],
			},
			SourceLine: line,
		})
	}

	return records
}

// parseUnnumbered extracts unranked subcommittee entries. Subcommittee
// rosters print majority and minority members in two columns that the text
// extraction flattens onto one line, so the first match on a line is
// attributed to the majority and every subsequent match to the minority.
// That positional heuristic is an approximation with no confidence signal;
// the quality package surfaces it rather than hiding it.
func (p *MemberParser) parseUnnumbered(line string, state *State, page int) []model.Assignment {
	matches := unnumberedEntryPattern.FindAllStringSubmatch(line, -1)
	if matches == nil {
		return nil
	}

	records := make([]model.Assignment, 0, len(matches))
	for i, m := range matches {
		group := model.GroupMajority
		if i > 0 {
			group = model.GroupMinority
		}

		records = append(records, model.Assignment{
			Committee:    state.CurrentCommittee,
			Subcommittee: state.CurrentSubcommittee,
			Rank:         model.UnrankedPosition,
			Page:         page,
			Group:        group,
			Member: model.Member{
				Name:  RepairConcatenation(NormalizeName(m[1])),
				State: m[2],
			},
			SourceLine: line,
		})
	}

	return records
}

// NormalizeName collapses internal whitespace runs to single spaces and
// trims the result. Punctuation (periods, hyphens, apostrophes) is kept.
func NormalizeName(name string) string {
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(name, " "))
}

// RepairConcatenation re-inserts the space the text extraction dropped
// between two concatenated words, at every lower-to-upper case transition
// ("SessionsJuan" -> "Sessions Juan"). Names with no case transition, such
// as wholly upper-case surnames, are not repairable this way and pass
// through unchanged.
func RepairConcatenation(name string) string {
	return caseBreakPattern.ReplaceAllString(name, "$1 $2")
}
