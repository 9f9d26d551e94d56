package lib

import (
	"errors"
	"fmt"
	"sort"
)

// Solver answers both parts of one day's puzzle. Implementations parse
// their input up front and must not change after construction.
type Solver interface {
	Part1() string
	Part2() string
}

// NewSolverFunc builds a day's solver from its raw input.
type NewSolverFunc func(input string) (Solver, error)

var ErrUnknownDay = errors.New("no solver registered for day")

var solvers = map[int]NewSolverFunc{}

// Register adds the constructor for day. Registering a day twice is an
// error.
func Register(day int, newSolver NewSolverFunc) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("day %d is out of range 1-25", day)
	}
	if _, exists := solvers[day]; exists {
		return fmt.Errorf("day %d is already registered", day)
	}
	solvers[day] = newSolver
	return nil
}

func mustRegister(day int, newSolver NewSolverFunc) {
	if err := Register(day, newSolver); err != nil {
		panic(err)
	}
}

func Lookup(day int) (NewSolverFunc, error) {
	newSolver, ok := solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w %02d", ErrUnknownDay, day)
	}
	return newSolver, nil
}

// Days returns every registered day in ascending order.
func Days() []int {
	days := []int{}
	for d := range solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
