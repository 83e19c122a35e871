package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/lvargas/rosterscan/internal/model"
)

// Renderer writes scan results as JSON and Markdown and prints the stdout
// summary. JSON output is deterministic for identical results.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full result as indented JSON
func (r *Renderer) RenderJSON(result *model.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// RenderMarkdown writes a human-readable roster report
func (r *Renderer) RenderMarkdown(result *model.Result, path string) error {
	var b strings.Builder

	b.WriteString("# Committee Roster Report\n\n")
	fmt.Fprintf(&b, "Source: `%s`\n\n", result.Source)

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- Committees: %d\n", len(result.Committees))
	fmt.Fprintf(&b, "- Subcommittees: %d\n", result.TotalSubcommittees())
	fmt.Fprintf(&b, "- Members: %d\n", len(result.Members))
	fmt.Fprintf(&b, "- Assignments: %d\n", len(result.Records))
	fmt.Fprintf(&b, "- Pages scanned: %d (%d empty)\n\n", result.PagesScanned, result.PagesEmpty)

	if len(result.Signals) > 0 {
		b.WriteString("## Data Quality\n\n")
		b.WriteString("| Severity | Signal | Description |\n")
		b.WriteString("|---|---|---|\n")
		for _, sig := range result.Signals {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", sig.Severity, sig.Type, sig.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Committees\n\n")
	for _, name := range sortedKeys(result.Committees) {
		fmt.Fprintf(&b, "### %s\n\n", name)
		for i, key := range result.Committees[name] {
			fmt.Fprintf(&b, "%d. %s\n", i+1, key)
		}
		b.WriteString("\n")

		subs := result.Subcommittees[name]
		for _, sub := range sortedKeys(subs) {
			fmt.Fprintf(&b, "#### %s\n\n", sub)
			for _, key := range subs[sub] {
				fmt.Fprintf(&b, "- %s\n", key)
			}
			b.WriteString("\n")
		}
	}

	// Subcommittee-only committees still get a section
	for _, name := range sortedKeys(result.Subcommittees) {
		if _, ok := result.Committees[name]; ok {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", name)
		subs := result.Subcommittees[name]
		for _, sub := range sortedKeys(subs) {
			fmt.Fprintf(&b, "#### %s\n\n", sub)
			for _, key := range subs[sub] {
				fmt.Fprintf(&b, "- %s\n", key)
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by rosterscan on %s\n", time.Now().UTC().Format(time.RFC3339))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// RenderSummary prints the headline numbers to stdout
func (r *Renderer) RenderSummary(result *model.Result) {
	fmt.Printf("\nRoster: %s\n", result.Source)
	fmt.Printf("  Committees:    %d\n", len(result.Committees))
	fmt.Printf("  Subcommittees: %d\n", result.TotalSubcommittees())
	fmt.Printf("  Members:       %d\n", len(result.Members))
	fmt.Printf("  Assignments:   %d\n", len(result.Records))

	for _, sig := range result.Signals {
		if sig.Severity == model.SeverityInfo {
			continue
		}
		fmt.Printf("  [%s] %s: %s\n", sig.Severity, sig.Type, sig.Description)
	}
}

// sortedKeys returns the map's keys in sorted order for stable rendering
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
