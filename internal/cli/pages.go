package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lvargas/rosterscan/internal/pdftext"
	"github.com/lvargas/rosterscan/internal/pipeline"
	"github.com/lvargas/rosterscan/internal/scan"
	"github.com/spf13/cobra"
)

var pagesRaw bool

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages <path-or-url> <page>...",
	Short: "Dump specific pages of a roster for format debugging",
	Long: `Pages prints the lines of the requested pages along with how the
classifier sees each one, which is the quickest way to diagnose why a
listing did or did not parse.

Example:
  rosterscan pages scsoal.pdf 23 24 25
  rosterscan pages scsoal.pdf 39 --raw`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.Flags().BoolVar(&pagesRaw, "raw", false, "print raw lines without classification")
	addFetchFlags(pagesCmd)
}

func runPages(cmd *cobra.Command, args []string) error {
	source := args[0]

	wanted := make(map[int]bool)
	for _, arg := range args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid page number %q", arg)
		}
		wanted[n] = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	provider, err := pageProvider(ctx, source)
	if err != nil {
		return err
	}

	pages, err := provider.Pages()
	if err != nil {
		return fmt.Errorf("read pages: %w", err)
	}

	classifier := scan.NewClassifier()
	found := 0

	for _, page := range pages {
		if !wanted[page.Number] {
			continue
		}
		found++

		fmt.Printf("\n========== PAGE %d ==========\n", page.Number)
		if len(page.Lines) == 0 {
			fmt.Println("(no extractable text)")
			continue
		}

		for i, line := range page.Lines {
			if pagesRaw {
				fmt.Printf("%4d: %s\n", i+1, line)
				continue
			}

			class := classifier.Classify(line)
			fmt.Printf("%4d  %-12s %s\n", i+1, kindLabel(class), line)
		}
	}

	if found == 0 {
		return fmt.Errorf("none of the requested pages exist (document has %d pages)", len(pages))
	}

	return nil
}

// pageProvider acquires pages for a path or URL using the same fetch stack
// as extract.
func pageProvider(ctx context.Context, source string) (pdftext.Provider, error) {
	if !pipeline.IsURL(source) {
		return pdftext.NewDocument(source), nil
	}

	data, err := pipeline.NewFetcher(fetchConfig()).Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	return pdftext.NewBytesDocument(data), nil
}

func kindLabel(c scan.LineClass) string {
	switch c.Kind {
	case scan.LineBlank:
		return "blank"
	case scan.LineSubcommitteeSection:
		return "subc-section"
	case scan.LineHeader:
		return "header"
	case scan.LineNoise:
		if c.Group != "" {
			return "marker"
		}
		return "noise"
	default:
		return "candidate"
	}
}
