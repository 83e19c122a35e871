// Package scan implements the roster extraction engine: a stateful,
// single-pass scanner that infers committee structure from the typography
// conventions of PDF-extracted roster text and emits normalized assignment
// records.
package scan

import (
	"errors"
	"fmt"

	"github.com/lvargas/rosterscan/internal/model"
	"github.com/lvargas/rosterscan/internal/pdftext"
)

// ErrNoPages is returned when the page provider yields no pages at all
var ErrNoPages = errors.New("document has no pages")

// Scanner runs the extraction engine over a page provider. The pass is
// strictly sequential: pages, then lines, then matches within a line.
// Committee context carries forward line-to-line, so nothing may be
// reordered.
type Scanner struct {
	classifier *Classifier
	parser     *MemberParser
}

// NewScanner creates a scanner with the default classifier and parser
func NewScanner() *Scanner {
	return &Scanner{
		classifier: NewClassifier(),
		parser:     NewMemberParser(),
	}
}

// Scan runs one full pass with a fresh aggregator and returns the
// finalized result. Pages without extractable text are skipped and
// counted; an unclassifiable line yields no records and the pass
// continues. Only a provider failure or a completely empty document is
// fatal.
func (s *Scanner) Scan(provider pdftext.Provider) (*model.Result, error) {
	agg := NewAggregator()

	scanned, empty, err := s.ScanInto(provider, agg)
	if err != nil {
		return nil, err
	}

	result := agg.Finalize()
	result.PagesScanned = scanned
	result.PagesEmpty = empty
	return result, nil
}

// ScanInto runs one pass, accumulating into the caller's aggregator. Each
// call uses an independent scan state, so callers may share an aggregator
// across documents to unify members. Returns the number of pages scanned
// and the number skipped for having no text.
func (s *Scanner) ScanInto(provider pdftext.Provider, agg *Aggregator) (scanned, empty int, err error) {
	pages, err := provider.Pages()
	if err != nil {
		return 0, 0, fmt.Errorf("read pages: %w", err)
	}
	if len(pages) == 0 {
		return 0, 0, ErrNoPages
	}

	state := NewState()

	for _, page := range pages {
		if len(page.Lines) == 0 {
			empty++
			continue
		}
		scanned++

		for _, line := range page.Lines {
			class := s.classifier.Classify(line)
			state.Apply(class)

			if class.Kind != LineCandidate {
				continue
			}

			for _, rec := range s.parser.Parse(line, state, page.Number) {
				agg.Record(rec)
			}
		}
	}

	return scanned, empty, nil
}
