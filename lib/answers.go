package lib

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const createAnswersTableSQL = `CREATE TABLE IF NOT EXISTS answers (
	day INT NOT NULL,
	part INT NOT NULL,
	sample BOOLEAN NOT NULL,
	answer TEXT NOT NULL,
	duration_ns BIGINT NOT NULL,
	recorded_at TIMESTAMP WITH TIME ZONE NOT NULL
)`

const insertAnswerSQL = `INSERT INTO answers (day, part, sample, answer, duration_ns, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// Answer is one recorded row of the answers table.
type Answer struct {
	Day        int
	Part       int
	Sample     bool
	Answer     string
	Duration   time.Duration
	RecordedAt time.Time
}

// answersFromResults flattens results into one row per part.
func answersFromResults(results []Result, at time.Time) []Answer {
	answers := []Answer{}
	for _, res := range results {
		answers = append(answers,
			Answer{Day: res.Day, Part: 1, Sample: res.Sample, Answer: res.Part1, Duration: res.Part1Time, RecordedAt: at},
			Answer{Day: res.Day, Part: 2, Sample: res.Sample, Answer: res.Part2, Duration: res.Part2Time, RecordedAt: at},
		)
	}
	return answers
}

// RecordAnswers appends results to the answers table in PostgreSQL,
// creating it first if needed. All rows go in one transaction.
func RecordAnswers(ctx context.Context, connectionString string, results []Result) error {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return err
	}
	defer db.Close()

	err = requireAnswersTable(ctx, db)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, answer := range answersFromResults(results, time.Now()) {
		err = insertAnswer(ctx, tx, answer)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// LatestAnswers returns the most recent answer recorded for each part of
// day, ordered by part.
func LatestAnswers(ctx context.Context, connectionString string, day int, sample bool) ([]Answer, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT ON (part) day, part, sample, answer, duration_ns, recorded_at
FROM answers WHERE day = $1 AND sample = $2
ORDER BY part, recorded_at DESC`, day, sample)
	if err != nil {
		return nil, fmt.Errorf("querying answers for day %02d: %w", day, err)
	}
	defer rows.Close()

	answers := []Answer{}
	for rows.Next() {
		var a Answer
		var durationNS int64
		if err := rows.Scan(&a.Day, &a.Part, &a.Sample, &a.Answer, &durationNS, &a.RecordedAt); err != nil {
			return nil, err
		}
		a.Duration = time.Duration(durationNS)
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func requireAnswersTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, createAnswersTableSQL)
	if err != nil {
		return fmt.Errorf("creating answers table: %w", err)
	}
	return nil
}

func insertAnswer(ctx context.Context, tx *sql.Tx, a Answer) error {
	_, err := tx.ExecContext(ctx, insertAnswerSQL, a.Day, a.Part, a.Sample, a.Answer, a.Duration.Nanoseconds(), a.RecordedAt)
	if err != nil {
		return fmt.Errorf("recording day %02d part %d: %w", a.Day, a.Part, err)
	}
	return nil
}
