package lib

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func init() {
	mustRegister(1, NewDay01)
}

type Day01 struct {
	left  []uint32
	right []uint32
}

func NewDay01(input string) (Solver, error) {
	d := &Day01{left: []uint32{}, right: []uint32{}}

	for i, line := range inputLines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 location IDs but got %d", i+1, len(fields))
		}
		a, err := parseUint32(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := parseUint32(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		d.left = append(d.left, a)
		d.right = append(d.right, b)
	}

	return d, nil
}

// Part1 pairs the lists up smallest to smallest and totals the distances.
func (d *Day01) Part1() string {
	left := sorted(d.left)
	right := sorted(d.right)

	var total uint32
	for i := range left {
		total += absDiff(left[i], right[i])
	}
	return strconv.FormatUint(uint64(total), 10)
}

// Part2 totals each left ID weighted by how often it appears on the right.
func (d *Day01) Part2() string {
	counts := occurrences(d.right)

	var total uint32
	for _, id := range d.left {
		total += id * counts[id]
	}
	return strconv.FormatUint(uint64(total), 10)
}

func sorted(values []uint32) []uint32 {
	out := append([]uint32{}, values...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func occurrences(values []uint32) map[uint32]uint32 {
	counts := map[uint32]uint32{}
	for _, v := range values {
		counts[v]++
	}
	return counts
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// inputLines splits input into lines, dropping the trailing newline and
// carriage returns.
func inputLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return []string{}
	}
	return strings.Split(input, "\n")
}
