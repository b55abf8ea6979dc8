package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/core"
)

func init() {
	testCmd.Flags().StringVarP(&flagTestFile, "file", "f", "", "read one command per line from this file instead of the given arguments")
	rootCmd.AddCommand(testCmd)
}

var flagTestFile string

var testCmd = &cobra.Command{
	Use:   "test [command ...]",
	Short: "Validate bundled patterns and batch-evaluate sample commands",
	Long: `With no arguments, compiles every bundled pattern pack and reports any
pattern that fails to compile.

With one or more command arguments, or --file, evaluates each command and
prints a box for every non-Allow verdict, then a one-line summary.`,
	RunE: runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := core.ValidatePacks(core.DefaultRegistry()); err != nil {
		return fmt.Errorf("pack validation failed: %w", err)
	}

	commands := args
	if flagTestFile != "" {
		fromFile, err := readLines(flagTestFile)
		if err != nil {
			return err
		}
		commands = append(commands, fromFile...)
	}

	if len(commands) == 0 {
		fmt.Fprintln(out, "All bundled packs compiled successfully.")
		return nil
	}

	evaluator := buildEvaluator()
	renderer := newRenderer()

	var allow, warn, deny, skipped int
	for _, command := range commands {
		decision := evaluator.Evaluate(command)
		renderer.Render(out, command, decision)
		switch decision.Kind {
		case core.DecisionAllow:
			allow++
		case core.DecisionWarn:
			warn++
		case core.DecisionDeny:
			deny++
		case core.DecisionSkippedDueToBudget:
			skipped++
		}
	}

	fmt.Fprintf(out, "%d commands: %d allow, %d warn, %d deny, %d skipped (budget)\n", len(commands), allow, warn, deny, skipped)
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
