// Package validate checks extracted assignment records for plausibility:
// recognized state codes and sane name shapes. Findings are advisory; the
// engine never rejects a record on their account.
package validate

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/lvargas/rosterscan/internal/model"
)

// RecordResult is the validation outcome for one assignment
type RecordResult struct {
	Member model.Member `json:"member"`
	Valid  bool         `json:"valid"`
	Issues []string     `json:"issues,omitempty"`
}

// Validator validates assignment records with bounded concurrency
type Validator struct {
	maxWorkers int
}

// NewValidator creates a validator running at most maxWorkers checks at once
func NewValidator(maxWorkers int) *Validator {
	if maxWorkers <= 0 {
		maxWorkers = 8
	}
	return &Validator{maxWorkers: maxWorkers}
}

// Validate checks every record and returns results in input order
func (v *Validator) Validate(ctx context.Context, records []model.Assignment) []RecordResult {
	if len(records) == 0 {
		return []RecordResult{}
	}

	results := make([]RecordResult, len(records))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, v.maxWorkers)

	for i, rec := range records {
		wg.Add(1)
		go func(idx int, r model.Assignment) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = RecordResult{
					Member: r.Member,
					Issues: []string{"context cancelled"},
				}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = validateRecord(r)
		}(i, rec)
	}

	wg.Wait()
	return results
}

// validateRecord checks a single assignment
func validateRecord(rec model.Assignment) RecordResult {
	var issues []string

	if !KnownState(rec.Member.State) {
		issues = append(issues, "unknown state code: "+rec.Member.State)
	}

	issues = append(issues, nameIssues(rec.Member.Name)...)

	if rec.Committee == "" {
		issues = append(issues, "record has no committee context")
	}
	if rec.Rank < 0 {
		issues = append(issues, "negative rank")
	}

	return RecordResult{
		Member: rec.Member,
		Valid:  len(issues) == 0,
		Issues: issues,
	}
}

// nameIssues checks the shape of a normalized member name
func nameIssues(name string) []string {
	var issues []string

	if name == "" {
		return []string{"empty name"}
	}

	if !strings.Contains(name, " ") {
		issues = append(issues, "single-token name")
	}

	for _, r := range name {
		if unicode.IsDigit(r) {
			issues = append(issues, "name contains digits")
			break
		}
	}

	first := []rune(name)[0]
	if !unicode.IsUpper(first) {
		issues = append(issues, "name does not start with a capital")
	}

	return issues
}
