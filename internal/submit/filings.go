package submit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FilingsFromDir builds a filing list from the PDFs in a directory. The
// file stem is the filing ID (e.g. "20033318.pdf" -> "20033318") and the
// official URL is derived from baseURL, matching how the clerk site names
// its PTR PDFs.
func FilingsFromDir(dir, baseURL string) ([]Filing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var filings []Filing
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		filings = append(filings, newFiling(id, baseURL))
	}

	sort.Slice(filings, func(i, j int) bool { return filings[i].FilingID < filings[j].FilingID })
	return filings, nil
}

// FilingsFromFile reads filing IDs from a file, one per line. Blank lines
// and #-comments are skipped, duplicates are dropped.
func FilingsFromFile(path, baseURL string) ([]Filing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var filings []Filing
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id := strings.TrimSuffix(line, ".pdf")
		if seen[id] {
			continue
		}
		seen[id] = true
		filings = append(filings, newFiling(id, baseURL))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return filings, nil
}

func newFiling(id, baseURL string) Filing {
	return Filing{
		FilingID: id,
		PDFURL:   strings.TrimSuffix(baseURL, "/") + "/" + id + ".pdf",
		Name:     "Bulk Import",
		Office:   "Unknown",
	}
}
