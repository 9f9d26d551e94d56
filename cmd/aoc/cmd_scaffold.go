package main

import (
	"fmt"
	"strconv"

	"github.com/graeme-hill/aoc2024-go/lib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scaffoldSrc string

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [day]",
	Short: "Create a stub solver and input directory for a new day",
	Args:  cobra.ExactArgs(1),
	RunE:  scaffoldDay,
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldSrc, "src", "lib", "Directory the solver file is written to")
}

func scaffoldDay(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}

	if err := lib.Scaffold(scaffoldSrc, cfg.InputsDir, day); err != nil {
		return err
	}

	logger.Info("scaffolded day", zap.Int("day", day), zap.String("src", scaffoldSrc), zap.String("inputs", cfg.InputsDir))
	fmt.Fprintf(cmd.OutOrStdout(), "Created day %02d\n", day)
	return nil
}
