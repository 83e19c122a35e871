package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lvargas/rosterscan/internal/pipeline"
	"github.com/lvargas/rosterscan/internal/validate"
	"github.com/spf13/cobra"
)

var validationWorkers int

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <path-or-url>",
	Short: "Extract a roster and check every record for plausibility",
	Long: `Validate runs the scan and then checks each assignment record:
- State code must be a known US state or territory code
- Member name must have a plausible shape (multiple tokens, no digits)
- Record must carry committee context and a non-negative rank

Findings are advisory. The command exits non-zero only when the
extraction itself fails.

Example:
  rosterscan validate scsoal.pdf
  rosterscan validate https://example.gov/scsoal.pdf --validation-workers 16`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().IntVar(&validationWorkers, "validation-workers", 8, "max concurrent record checks")
	addFetchFlags(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := fetchConfig()
	cfg.Concurrency.ValidationWorkers = validationWorkers

	p := pipeline.NewPipeline(cfg)

	result, err := p.Extract(ctx, source)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	validator := validate.NewValidator(cfg.Concurrency.ValidationWorkers)
	results := validator.Validate(ctx, result.Records)

	invalid := 0
	for i, res := range results {
		if res.Valid {
			continue
		}
		invalid++

		rec := result.Records[i]
		location := rec.Committee
		if rec.Subcommittee != "" {
			location += " / " + rec.Subcommittee
		}

		fmt.Printf("✗ %s (%s, page %d)\n", res.Member.Key(), location, rec.Page)
		for _, issue := range res.Issues {
			fmt.Printf("    - %s\n", issue)
		}
	}

	fmt.Printf("\nChecked %d records: %d valid, %d with issues\n", len(results), len(results)-invalid, invalid)

	if verbose && invalid == 0 {
		fmt.Fprintln(os.Stderr, "✓ All records passed")
	}

	return nil
}
