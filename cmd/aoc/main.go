package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/graeme-hill/aoc2024-go/lib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    lib.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2024 solutions",
	Long: `aoc solves Advent of Code puzzles by day number.

Inputs are read from <inputs_dir>/<NN>/input.txt, or sample.txt with --sample.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = lib.LoadConfig(configPath)
		if err != nil {
			return err
		}

		logger, err = lib.NewLogger(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(runCmd, scaffoldCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
