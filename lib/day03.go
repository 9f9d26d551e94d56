package lib

import "strconv"

func init() {
	mustRegister(3, NewDay03)
}

type Day03 struct {
	commands []Command
}

func NewDay03(input string) (Solver, error) {
	return &Day03{commands: ParseCommands(input)}, nil
}

func (d *Day03) Part1() string {
	return strconv.FormatUint(uint64(SumProducts(d.commands)), 10)
}

func (d *Day03) Part2() string {
	return strconv.FormatUint(uint64(RunCommands(d.commands)), 10)
}
