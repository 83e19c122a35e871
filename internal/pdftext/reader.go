package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document reads page text from a PDF file on disk
type Document struct {
	path string
}

// NewDocument creates a provider for a PDF file path
func NewDocument(path string) *Document {
	return &Document{path: path}
}

// Pages extracts text from every page of the file. Each call reopens the
// file, so the provider is restartable.
func (d *Document) Pages() ([]Page, error) {
	f, r, err := pdf.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", d.path, err)
	}
	defer func() { _ = f.Close() }()

	return readPages(r)
}

// BytesDocument reads page text from an in-memory PDF, typically one just
// fetched over HTTP.
type BytesDocument struct {
	data []byte
}

// NewBytesDocument creates a provider over raw PDF bytes
func NewBytesDocument(data []byte) *BytesDocument {
	return &BytesDocument{data: data}
}

// Pages extracts text from every page of the in-memory PDF
func (d *BytesDocument) Pages() ([]Page, error) {
	if len(d.data) == 0 {
		return nil, fmt.Errorf("empty pdf content")
	}

	r, err := pdf.NewReader(bytes.NewReader(d.data), int64(len(d.data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	return readPages(r)
}

// readPages walks the document page by page. Unreadable pages are kept as
// empty pages rather than aborting the document: the scanner counts and
// skips them.
func readPages(r *pdf.Reader) ([]Page, error) {
	var pages []Page

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, Page{Number: i})
			continue
		}

		pages = append(pages, Page{Number: i, Lines: splitLines(text)})
	}

	return pages, nil
}

// splitLines splits extracted page text into trimmed lines, dropping
// leading/trailing blank runs but keeping interior blanks (the classifier
// skips those itself).
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSpace(line))
	}

	// Trim blank edges so an all-blank page reads as empty
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}

	return lines[start:end]
}
