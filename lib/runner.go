package lib

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result holds both answers for one day along with how long each step took.
type Result struct {
	Day       int
	Sample    bool
	Part1     string
	Part2     string
	ParseTime time.Duration
	Part1Time time.Duration
	Part2Time time.Duration
}

type Runner struct {
	Logger      *zap.Logger
	InputDir    string
	Sample      bool
	Concurrency int
}

func NewRunner(logger *zap.Logger, cfg Config) *Runner {
	return &Runner{
		Logger:      logger,
		InputDir:    cfg.InputsDir,
		Concurrency: cfg.Concurrency,
	}
}

// Run reads the input for day and solves both parts.
func (r *Runner) Run(ctx context.Context, day int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	newSolver, err := Lookup(day)
	if err != nil {
		return Result{}, err
	}

	input, err := ReadInput(r.InputDir, day, r.Sample)
	if err != nil {
		return Result{}, err
	}

	return r.solve(day, newSolver, input)
}

// RunAll solves each day, several at a time, and returns the results in the
// same order as days. The first failure cancels the days not yet started.
func (r *Runner) RunAll(ctx context.Context, days []int) ([]Result, error) {
	results := make([]Result, len(days))

	g, ctx := errgroup.WithContext(ctx)
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}

	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			res, err := r.Run(ctx, day)
			if err != nil {
				r.Logger.Error("day failed", zap.Int("day", day), zap.Error(err))
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) solve(day int, newSolver NewSolverFunc, input string) (Result, error) {
	res := Result{Day: day, Sample: r.Sample}

	start := time.Now()
	solver, err := newSolver(input)
	if err != nil {
		return Result{}, fmt.Errorf("parsing input for day %02d: %w", day, err)
	}
	res.ParseTime = time.Since(start)

	start = time.Now()
	res.Part1 = solver.Part1()
	res.Part1Time = time.Since(start)

	start = time.Now()
	res.Part2 = solver.Part2()
	res.Part2Time = time.Since(start)

	r.Logger.Debug("solved",
		zap.Int("day", day),
		zap.Bool("sample", r.Sample),
		zap.Duration("parse", res.ParseTime),
		zap.Duration("part1", res.Part1Time),
		zap.Duration("part2", res.Part2Time))

	return res, nil
}
