package test

import (
	"context"
	"testing"

	"github.com/graeme-hill/aoc2024-go/lib"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAllSamples(t *testing.T) {
	runner := &lib.Runner{
		Logger:      zap.NewNop(),
		InputDir:    "../inputs",
		Sample:      true,
		Concurrency: 4,
	}

	results, err := runner.RunAll(context.Background(), lib.Days())
	require.NoError(t, err)
	require.Len(t, results, 5)

	want := [][2]string{
		{"11", "31"},
		{"2", "4"},
		{"161", "48"},
		{"18", "9"},
		{"143", "123"},
	}
	for i, res := range results {
		require.Equal(t, i+1, res.Day)
		require.True(t, res.Sample)
		require.Equal(t, want[i][0], res.Part1, "day %02d part 1", res.Day)
		require.Equal(t, want[i][1], res.Part2, "day %02d part 2", res.Day)
	}
}
