package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lvargas/rosterscan/internal/model"
	"github.com/lvargas/rosterscan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noRobots    bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <path-or-url>",
	Short: "Extract committee assignments from a roster PDF",
	Long: `Extract runs the full scan over a roster document:
- Read the document page by page (local file or downloaded URL)
- Classify each line as header, subcommittee section, marker, or member entry
- Parse numbered and unnumbered member listings into assignment records
- Build committee, subcommittee and per-member indexes
- Report data-quality signals for the known precision limits

Example:
  rosterscan extract scsoal.pdf
  rosterscan extract scsoal.pdf --json roster.json --md roster.md
  rosterscan extract https://example.gov/scsoal.pdf --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&outJSON, "json", "roster.json", "output JSON path")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	addFetchFlags(extractCmd)
}

// addFetchFlags registers the HTTP flags shared by every command that may
// download a roster.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	cmd.Flags().StringVar(&userAgent, "ua", "rosterscan/0.2 (+https://github.com/lvargas/rosterscan)", "HTTP User-Agent")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 25_000_000, "max response bytes to read")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	cmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	cmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip the robots.txt check")
	cmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	cmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	cmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

// fetchConfig builds the configuration shared fetch flags describe
func fetchConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.HTTP.CheckRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	return cfg
}

func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(fetchConfig())

	result, err := p.Extract(ctx, source)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Scanned %d pages (%d empty)\n", result.PagesScanned, result.PagesEmpty)
		fmt.Fprintf(os.Stderr, "✓ Extracted %d assignments for %d members\n", len(result.Records), len(result.Members))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.Render(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
