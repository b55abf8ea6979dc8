package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <command>",
	Short: "Show safer alternatives for a command that would be denied or warned about",
	Long: `Evaluates the given command and, if it matches a destructive pattern,
prints that pattern's bundled suggestions without writing anything to
history or issuing an allow-once code.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	command := args[0]
	decision := buildEvaluator().Evaluate(command)

	if decision.Match == nil {
		fmt.Fprintln(out, "No destructive pattern matched; nothing to suggest.")
		return nil
	}

	if len(decision.Match.Suggestions) == 0 {
		fmt.Fprintf(out, "Matched %s (%s), but no safer alternative is bundled for this pattern.\n",
			decision.Match.RuleID(), decision.Match.Severity)
		return nil
	}

	fmt.Fprintf(out, "Matched %s:\n\n", decision.Match.RuleID())
	for _, s := range decision.Match.Suggestions {
		fmt.Fprintf(out, "  -> %s\n", s.SafeAlternative)
		if s.Explanation != "" {
			fmt.Fprintf(out, "     %s\n", s.Explanation)
		}
	}
	return nil
}
