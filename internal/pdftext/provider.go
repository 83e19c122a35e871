// Package pdftext supplies the scanner with ordered per-page lines of text.
// The engine consumes already-linearized text; this package is the only
// place that knows the source is a PDF.
package pdftext

// Page is one page of extracted text. Number is 1-based.
type Page struct {
	Number int
	Lines  []string
}

// Provider produces the finite, ordered page sequence of one document.
// Pages is restartable: each call re-reads the source from the start.
type Provider interface {
	Pages() ([]Page, error)
}

// Static is an in-memory provider, used for tests and piped text
type Static struct {
	pages []Page
}

// NewStatic creates a provider over fixed pages
func NewStatic(pages []Page) *Static {
	return &Static{pages: pages}
}

// Pages returns a copy of the fixed page list
func (s *Static) Pages() ([]Page, error) {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out, nil
}
