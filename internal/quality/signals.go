// Package quality inspects a finished scan result for known precision
// limits of the extraction and surfaces them as diagnostic signals. The
// signals are transparent (each carries the data behind it) and never fail
// a scan.
package quality

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lvargas/rosterscan/internal/model"
)

// maxExamples bounds how many offending values a signal lists
const maxExamples = 10

// Evaluate generates the full signal set for a result
func Evaluate(result *model.Result) []model.Signal {
	var signals []model.Signal

	signals = append(signals, coverageSignal(result))
	signals = append(signals, groupAmbiguitySignal(result))

	if s := nameRepairSignal(result); s != nil {
		signals = append(signals, *s)
	}
	if s := emptyPagesSignal(result); s != nil {
		signals = append(signals, *s)
	}
	if s := indexConsistencySignal(result); s != nil {
		signals = append(signals, *s)
	}

	return signals
}

// coverageSignal reports overall extraction volume. Zero records from a
// non-empty document means the format assumptions did not hold.
func coverageSignal(result *model.Result) model.Signal {
	severity := model.SeverityInfo
	if len(result.Records) == 0 {
		severity = model.SeverityCritical
	}

	return model.Signal{
		Type:     model.SignalCoverage,
		Severity: severity,
		Description: fmt.Sprintf("%d committees, %d subcommittees, %d members, %d assignments",
			len(result.Committees), result.TotalSubcommittees(), len(result.Members), len(result.Records)),
		Data: map[string]interface{}{
			"committees":    len(result.Committees),
			"subcommittees": result.TotalSubcommittees(),
			"members":       len(result.Members),
			"assignments":   len(result.Records),
		},
	}
}

// groupAmbiguitySignal reports how many records received their group from
// the positional column heuristic rather than an explicit marker. Unranked
// subcommittee entries are the only records attributed that way, and the
// linearized text offers no signal to confirm the column split.
func groupAmbiguitySignal(result *model.Result) model.Signal {
	unranked := 0
	for _, rec := range result.Records {
		if rec.Rank == model.UnrankedPosition {
			unranked++
		}
	}

	severity := model.SeverityInfo
	ratio := 0.0
	if len(result.Records) > 0 {
		ratio = float64(unranked) / float64(len(result.Records))
		if ratio > 0.5 {
			severity = model.SeverityWarning
		}
	}

	return model.Signal{
		Type:        model.SignalGroupAmbiguity,
		Severity:    severity,
		Description: fmt.Sprintf("%d of %d records use positional majority/minority attribution", unranked, len(result.Records)),
		Data: map[string]interface{}{
			"positional": unranked,
			"total":      len(result.Records),
			"ratio":      ratio,
		},
	}
}

// nameRepairSignal lists names that still look concatenated after repair:
// a single token, or an interior upper-case run with no word break. Wholly
// upper-case surnames have no case transition for the repair to find, so
// these are candidates for silent extraction damage.
func nameRepairSignal(result *model.Result) *model.Signal {
	suspectSet := make(map[string]bool)
	for _, rec := range result.Records {
		if suspiciousName(rec.Member.Name) {
			suspectSet[rec.Member.Key()] = true
		}
	}
	if len(suspectSet) == 0 {
		return nil
	}

	suspects := make([]string, 0, len(suspectSet))
	for key := range suspectSet {
		suspects = append(suspects, key)
	}
	sort.Strings(suspects)

	examples := suspects
	if len(examples) > maxExamples {
		examples = examples[:maxExamples]
	}

	return &model.Signal{
		Type:        model.SignalNameRepair,
		Severity:    model.SeverityWarning,
		Description: fmt.Sprintf("%d member names look concatenated or truncated", len(suspects)),
		Data: map[string]interface{}{
			"count":    len(suspects),
			"examples": examples,
		},
	}
}

// suspiciousName reports whether a normalized name still carries a shape
// the repair step cannot produce from clean input.
func suspiciousName(name string) bool {
	if name == "" {
		return true
	}

	// A full entry should be at least first and last name
	if !strings.Contains(name, " ") {
		return true
	}

	// An interior run of 3+ capitals is not initials or a Mc/Mac prefix;
	// it is usually a state code or header fragment glued into the name.
	run := 0
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 0
		}
	}

	return false
}

// emptyPagesSignal reports pages skipped for lacking extractable text
func emptyPagesSignal(result *model.Result) *model.Signal {
	if result.PagesEmpty == 0 {
		return nil
	}

	return &model.Signal{
		Type:        model.SignalEmptyPages,
		Severity:    model.SeverityInfo,
		Description: fmt.Sprintf("%d of %d pages had no extractable text", result.PagesEmpty, result.PagesEmpty+result.PagesScanned),
		Data: map[string]interface{}{
			"empty":   result.PagesEmpty,
			"scanned": result.PagesScanned,
		},
	}
}

// indexConsistencySignal cross-checks the member set against every index.
// Any key present in an index but missing from the member set (or the
// reverse) is an aggregator defect, so it escalates to critical.
func indexConsistencySignal(result *model.Result) *model.Signal {
	inMembers := make(map[string]bool, len(result.Members))
	for _, key := range result.Members {
		inMembers[key] = true
	}

	indexed := make(map[string]bool)
	for _, keys := range result.Committees {
		for _, key := range keys {
			indexed[key] = true
		}
	}
	for _, subs := range result.Subcommittees {
		for _, keys := range subs {
			for _, key := range keys {
				indexed[key] = true
			}
		}
	}
	for key := range result.MemberAssignments {
		indexed[key] = true
	}

	var orphans []string
	for key := range indexed {
		if !inMembers[key] {
			orphans = append(orphans, key)
		}
	}
	for key := range inMembers {
		if !indexed[key] {
			orphans = append(orphans, key)
		}
	}
	if len(orphans) == 0 {
		return nil
	}
	sort.Strings(orphans)

	examples := orphans
	if len(examples) > maxExamples {
		examples = examples[:maxExamples]
	}

	return &model.Signal{
		Type:        model.SignalIndexConsistency,
		Severity:    model.SeverityCritical,
		Description: fmt.Sprintf("%d member keys are missing from one or more indexes", len(orphans)),
		Data: map[string]interface{}{
			"count":    len(orphans),
			"examples": examples,
		},
	}
}
