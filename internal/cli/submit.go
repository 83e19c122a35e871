package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lvargas/rosterscan/internal/model"
	"github.com/lvargas/rosterscan/internal/submit"
	"github.com/lvargas/rosterscan/internal/worker"
	"github.com/spf13/cobra"
)

var (
	submitEndpoint  string
	submitBaseURL   string
	submitBatchSize int
	submitWorkers   int
	submitTimeout   time.Duration
	submitRPS       float64
	submitBurst     int
	discoverURL     string
	assumeYes       bool
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit [dir-or-file]",
	Short: "Submit filing PDFs to the bulk-import endpoint in batches",
	Long: `Submit forwards filing identifiers to the remote bulk-import endpoint
in fixed-size batches and reports what each batch queued.

Filings come from one of:
- a directory of PDFs (the file stem is the filing ID)
- a file of filing IDs, one per line
- an HTML index page of PDF links (--discover)

Example:
  rosterscan submit ./pdfs
  rosterscan submit ids.txt --endpoint https://funcs.example.com/api/bulk-import
  rosterscan submit --discover https://disclosures-clerk.house.gov/public_disc/ptr-pdfs/2025/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	defaults := model.DefaultConfig().Submit
	submitCmd.Flags().StringVar(&submitEndpoint, "endpoint", defaults.Endpoint, "bulk-import endpoint URL")
	submitCmd.Flags().StringVar(&submitBaseURL, "base-url", defaults.BaseURL, "official URL prefix for filing PDFs")
	submitCmd.Flags().IntVar(&submitBatchSize, "batch-size", defaults.BatchSize, "filings per batch")
	submitCmd.Flags().IntVar(&submitWorkers, "workers", 2, "concurrent batch submissions")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", defaults.Timeout, "per-request timeout")
	submitCmd.Flags().Float64Var(&submitRPS, "rps", 2, "requests per second to the endpoint")
	submitCmd.Flags().IntVar(&submitBurst, "burst", 5, "rate limiter burst size")
	submitCmd.Flags().StringVar(&discoverURL, "discover", "", "HTML index page to discover filing PDFs from")
	submitCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	filings, err := loadFilings(args)
	if err != nil {
		return err
	}
	if len(filings) == 0 {
		return fmt.Errorf("no filings found")
	}

	fmt.Fprintf(os.Stderr, "Found %d filings\n", len(filings))

	if !assumeYes && !confirm(fmt.Sprintf("Submit %d filings for processing?", len(filings))) {
		fmt.Fprintln(os.Stderr, "Cancelled")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := submit.NewClient(submitEndpoint, submitTimeout)
	processor := worker.NewBatchProcessor(client, submitBatchSize, submitWorkers, submitRPS, submitBurst)

	fmt.Fprintf(os.Stderr, "Processing %d filings in batches of %d...\n\n", len(filings), submitBatchSize)

	outcomes := processor.Process(ctx, filings)

	queued, total, failures := 0, 0, 0
	for _, out := range outcomes {
		if out.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ Batch %d (%d filings): %v\n", out.Batch+1, len(out.Filings), out.Error)
			continue
		}

		queued += out.Response.Queued
		total += out.Response.Total
		fmt.Fprintf(os.Stderr, "✓ Batch %d: queued %d/%d\n", out.Batch+1, out.Response.Queued, out.Response.Total)
		for _, e := range out.Response.Errors {
			fmt.Fprintf(os.Stderr, "  error: %s\n", e)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: queued %d/%d filings, %d failed batches\n", queued, total, failures)

	if failures > 0 {
		return fmt.Errorf("%d of %d batches failed", failures, len(outcomes))
	}
	return nil
}

// loadFilings resolves the filing list from --discover, a directory, or an
// ID file.
func loadFilings(args []string) ([]submit.Filing, error) {
	if discoverURL != "" {
		return discoverFilings(discoverURL)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("provide a directory, an ID file, or --discover")
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", args[0], err)
	}

	if info.IsDir() {
		return submit.FilingsFromDir(args[0], submitBaseURL)
	}
	return submit.FilingsFromFile(args[0], submitBaseURL)
}

// discoverFilings downloads an index page and collects its PDF links
func discoverFilings(pageURL string) ([]submit.Filing, error) {
	httpClient := &http.Client{Timeout: submitTimeout}

	resp, err := httpClient.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch index page: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10_000_000))
	if err != nil {
		return nil, fmt.Errorf("read index page: %w", err)
	}

	return submit.DiscoverFilings(string(body), pageURL)
}

// confirm asks the operator before an outward-facing submission
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s (yes/no): ", prompt)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y"
}
