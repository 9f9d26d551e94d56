package lib

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRunner(t *testing.T, dir string) *Runner {
	return &Runner{
		Logger:      zaptest.NewLogger(t),
		InputDir:    dir,
		Concurrency: 2,
	}
}

func TestRunnerRun(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "03", "input.txt", "do()mul(1,1)don't()mul(2,2)do()mul(3,3)")

	res, err := newTestRunner(t, dir).Run(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, res.Day)
	require.False(t, res.Sample)
	require.Equal(t, "14", res.Part1)
	require.Equal(t, "10", res.Part2)
}

func TestRunnerSample(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "01", "sample.txt", day01Sample)

	runner := newTestRunner(t, dir)
	runner.Sample = true
	res, err := runner.Run(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, res.Sample)
	require.Equal(t, "11", res.Part1)
	require.Equal(t, "31", res.Part2)
}

func TestRunnerUnknownDay(t *testing.T) {
	_, err := newTestRunner(t, t.TempDir()).Run(context.Background(), 20)
	require.True(t, errors.Is(err, ErrUnknownDay))
}

func TestRunnerBadInput(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "04", "input.txt", "XMAS\nHELLO\n")

	_, err := newTestRunner(t, dir).Run(context.Background(), 4)
	require.Error(t, err)
	require.Contains(t, err.Error(), "day 04")
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRunner(t, t.TempDir()).Run(ctx, 1)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestRunAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "01", "input.txt", day01Sample)
	writeInput(t, dir, "02", "input.txt", day02Sample)
	writeInput(t, dir, "03", "input.txt", day03Sample)
	writeInput(t, dir, "04", "input.txt", day04Sample)
	writeInput(t, dir, "05", "input.txt", day05Sample)

	results, err := newTestRunner(t, dir).RunAll(context.Background(), []int{5, 1, 3, 2, 4})
	require.NoError(t, err)
	require.Len(t, results, 5)

	days := []int{}
	for _, res := range results {
		days = append(days, res.Day)
	}
	require.Equal(t, []int{5, 1, 3, 2, 4}, days)
	require.Equal(t, "143", results[0].Part1)
	require.Equal(t, "48", results[2].Part2)
}

func TestRunAllFails(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "01", "input.txt", day01Sample)

	_, err := newTestRunner(t, dir).RunAll(context.Background(), []int{1, 2})
	require.Error(t, err)
}

func TestRunAllEmpty(t *testing.T) {
	results, err := newTestRunner(t, t.TempDir()).RunAll(context.Background(), []int{})
	require.NoError(t, err)
	require.Empty(t, results)
}
