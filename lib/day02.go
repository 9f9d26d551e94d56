package lib

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	mustRegister(2, NewDay02)
}

const (
	minChange = 1
	maxChange = 3
)

type report []int

// A report is safe when it only increases, or only decreases, and each
// step is between minChange and maxChange.
func (r report) isSafe() bool {
	increasing, decreasing := true, true
	for i := 1; i < len(r); i++ {
		diff := r[i] - r[i-1]
		if diff < minChange || diff > maxChange {
			increasing = false
		}
		if diff > -minChange || diff < -maxChange {
			decreasing = false
		}
	}
	return increasing || decreasing
}

func (r report) withoutLevel(idx int) report {
	out := make(report, 0, len(r)-1)
	out = append(out, r[:idx]...)
	return append(out, r[idx+1:]...)
}

func (r report) isSafeWithRemoval() bool {
	for i := range r {
		if r.withoutLevel(i).isSafe() {
			return true
		}
	}
	return false
}

type Day02 struct {
	reports []report
}

func NewDay02(input string) (Solver, error) {
	d := &Day02{reports: []report{}}

	for i, line := range inputLines(input) {
		r := report{}
		for _, field := range strings.Fields(line) {
			level, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			r = append(r, level)
		}
		d.reports = append(d.reports, r)
	}

	return d, nil
}

func (d *Day02) Part1() string {
	count := 0
	for _, r := range d.reports {
		if r.isSafe() {
			count++
		}
	}
	return strconv.Itoa(count)
}

// Part2 also accepts reports that become safe after dropping one level.
func (d *Day02) Part2() string {
	count := 0
	for _, r := range d.reports {
		if r.isSafe() || r.isSafeWithRemoval() {
			count++
		}
	}
	return strconv.Itoa(count)
}
