package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/graeme-hill/aoc2024-go/lib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runSample bool
	runAll    bool
	runRecord bool
	runInputs string
)

var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve both parts of a day",
	Long: `Solves part 1 and part 2 of the given day and prints the answers with
timings. With --all every registered day that has an input is solved.

Example:
  aoc run 3 --sample`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDays,
}

func init() {
	runCmd.Flags().BoolVar(&runSample, "sample", false, "Use sample.txt instead of input.txt")
	runCmd.Flags().BoolVar(&runAll, "all", false, "Solve every registered day")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "Record answers in the answers database")
	runCmd.Flags().StringVar(&runInputs, "inputs", "", "Directory holding the day inputs (overrides config)")
}

func runDays(cmd *cobra.Command, args []string) error {
	runner := lib.NewRunner(logger, cfg)
	runner.Sample = runSample
	if runInputs != "" {
		runner.InputDir = runInputs
	}

	days, err := selectDays(args, runner.InputDir)
	if err != nil {
		return err
	}

	results, err := runner.RunAll(cmd.Context(), days)
	if err != nil {
		return err
	}

	for _, res := range results {
		printResult(cmd.OutOrStdout(), res)
	}

	if runRecord || cfg.Answers.Enabled {
		if cfg.Answers.DSN == "" {
			return fmt.Errorf("cannot record answers without a dsn")
		}
		if err := lib.RecordAnswers(cmd.Context(), cfg.Answers.DSN, results); err != nil {
			return fmt.Errorf("recording answers: %w", err)
		}
		logger.Info("recorded answers", zap.Int("days", len(results)))
	}
	return nil
}

func selectDays(args []string, inputDir string) ([]int, error) {
	if runAll {
		if len(args) > 0 {
			return nil, fmt.Errorf("--all does not take a day")
		}
		return daysWithInputs(inputDir)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("a day is required unless --all is set")
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", args[0], err)
	}
	if _, err := lib.Lookup(day); err != nil {
		return nil, err
	}
	return []int{day}, nil
}

func printResult(w io.Writer, res lib.Result) {
	fmt.Fprintf(w, "Day %02d, Part 1:\n%s\n", res.Day, res.Part1)
	fmt.Fprintf(w, "Day %02d, Part 2:\n%s\n", res.Day, res.Part2)
	fmt.Fprintf(w, "(parse %s, part 1 %s, part 2 %s)\n", res.ParseTime, res.Part1Time, res.Part2Time)
}

// daysWithInputs returns the registered days that have an input directory.
func daysWithInputs(inputDir string) ([]int, error) {
	available, err := lib.InputDays(inputDir)
	if err != nil {
		return nil, fmt.Errorf("listing inputs: %w", err)
	}
	hasInput := map[int]bool{}
	for _, d := range available {
		hasInput[d] = true
	}

	days := []int{}
	for _, d := range lib.Days() {
		if hasInput[d] {
			days = append(days, d)
		}
	}
	return days, nil
}
