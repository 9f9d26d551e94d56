package lib

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAnswersFromResults(t *testing.T) {
	at := time.Date(2024, 12, 3, 5, 0, 0, 0, time.UTC)
	answers := answersFromResults([]Result{
		{Day: 3, Sample: true, Part1: "161", Part2: "48", Part1Time: time.Millisecond, Part2Time: 2 * time.Millisecond},
	}, at)

	require.Len(t, answers, 2)
	require.Equal(t, Answer{Day: 3, Part: 1, Sample: true, Answer: "161", Duration: time.Millisecond, RecordedAt: at}, answers[0])
	require.Equal(t, Answer{Day: 3, Part: 2, Sample: true, Answer: "48", Duration: 2 * time.Millisecond, RecordedAt: at}, answers[1])
}

// Needs a reachable PostgreSQL, e.g. AOC_TEST_DSN="user=postgres password=password sslmode=disable".
func TestRecordAnswers(t *testing.T) {
	connStr := os.Getenv("AOC_TEST_DSN")
	if connStr == "" {
		t.Skip("AOC_TEST_DSN not set")
	}

	ctx := context.Background()
	err := RecordAnswers(ctx, connStr, []Result{{Day: 25, Sample: true, Part1: "first", Part2: "second"}})
	require.NoError(t, err)

	answers, err := LatestAnswers(ctx, connStr, 25, true)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	require.Equal(t, 1, answers[0].Part)
	require.Equal(t, "first", answers[0].Answer)
	require.Equal(t, 2, answers[1].Part)
	require.Equal(t, "second", answers[1].Answer)
}
