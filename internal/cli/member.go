package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lvargas/rosterscan/internal/model"
	"github.com/lvargas/rosterscan/internal/pipeline"
	"github.com/spf13/cobra"
)

// memberCmd represents the member command
var memberCmd = &cobra.Command{
	Use:   "member <path-or-url> <query>",
	Short: "Find a member's assignments in a roster",
	Long: `Member runs the full scan and lists every assignment of the members
whose name contains the query (case-insensitive), with page, committee and
group context.

Example:
  rosterscan member scsoal.pdf "Sessions"
  rosterscan member scsoal.pdf "pete sessions"`,
	Args: cobra.ExactArgs(2),
	RunE: runMember,
}

func init() {
	rootCmd.AddCommand(memberCmd)
	addFetchFlags(memberCmd)
}

func runMember(cmd *cobra.Command, args []string) error {
	source, query := args[0], strings.ToLower(args[1])
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	p := pipeline.NewPipeline(fetchConfig())

	result, err := p.Extract(ctx, source)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	matched := make([]string, 0)
	for _, key := range result.Members {
		if strings.Contains(strings.ToLower(key), query) {
			matched = append(matched, key)
		}
	}

	if len(matched) == 0 {
		fmt.Printf("No members matching %q\n", args[1])
		return nil
	}

	for _, key := range matched {
		assignments := append([]model.Assignment(nil), result.MemberAssignments[key]...)
		sort.SliceStable(assignments, func(i, j int) bool { return assignments[i].Page < assignments[j].Page })

		fmt.Printf("\n%s — %d assignments\n", key, len(assignments))
		for i, a := range assignments {
			fmt.Printf("\n%d. Page %d:\n", i+1, a.Page)
			fmt.Printf("   Committee: %s\n", a.Committee)
			if a.Subcommittee != "" {
				fmt.Printf("   Subcommittee: %s\n", a.Subcommittee)
			}
			fmt.Printf("   Group: %s\n", a.Group)
			if a.Rank > 0 {
				fmt.Printf("   Rank: #%d\n", a.Rank)
			}
			fmt.Printf("   Raw: %q\n", truncate(a.SourceLine, 80))
		}
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
