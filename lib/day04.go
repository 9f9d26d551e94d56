package lib

import (
	"fmt"
	"strconv"
)

func init() {
	mustRegister(4, NewDay04)
}

type coords struct {
	x int
	y int
}

func (c coords) step(dir coords, n int) coords {
	return coords{x: c.x + dir.x*n, y: c.y + dir.y*n}
}

var compass = []coords{
	{0, -1},  // north
	{1, -1},  // northeast
	{1, 0},   // east
	{1, 1},   // southeast
	{0, 1},   // south
	{-1, 1},  // southwest
	{-1, 0},  // west
	{-1, -1}, // northwest
}

type letterGrid struct {
	width  int
	height int
	data   [][]rune
}

func (g letterGrid) contains(c coords) bool {
	return c.x >= 0 && c.y >= 0 && c.x < g.width && c.y < g.height
}

func (g letterGrid) get(c coords) rune {
	return g.data[c.y][c.x]
}

func (g letterGrid) find(target rune) []coords {
	found := []coords{}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := coords{x: x, y: y}
			if g.get(c) == target {
				found = append(found, c)
			}
		}
	}
	return found
}

// spells reports whether word starts at from and runs in dir.
func (g letterGrid) spells(word string, from coords, dir coords) bool {
	n := 0
	for _, ch := range word {
		c := from.step(dir, n)
		if !g.contains(c) || g.get(c) != ch {
			return false
		}
		n++
	}
	return true
}

type Day04 struct {
	grid letterGrid
}

func NewDay04(input string) (Solver, error) {
	data := [][]rune{}
	for i, line := range inputLines(input) {
		row := []rune(line)
		for j, ch := range row {
			switch ch {
			case 'X', 'M', 'A', 'S':
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected character %q", i+1, j+1, ch)
			}
		}
		if len(data) > 0 && len(row) != len(data[0]) {
			return nil, fmt.Errorf("line %d: expected %d letters but got %d", i+1, len(data[0]), len(row))
		}
		data = append(data, row)
	}

	grid := letterGrid{height: len(data), data: data}
	if len(data) > 0 {
		grid.width = len(data[0])
	}
	return &Day04{grid: grid}, nil
}

// Part1 counts XMAS in every direction, overlaps included.
func (d *Day04) Part1() string {
	count := 0
	for _, x := range d.grid.find('X') {
		for _, dir := range compass {
			if d.grid.spells("XMAS", x, dir) {
				count++
			}
		}
	}
	return strconv.Itoa(count)
}

// Part2 counts two MAS crossing on their A, each readable either way.
func (d *Day04) Part2() string {
	count := 0
	for _, a := range d.grid.find('A') {
		if a.x < 1 || a.y < 1 || a.x > d.grid.width-2 || a.y > d.grid.height-2 {
			continue
		}
		down := d.isMas(a.step(coords{-1, -1}, 1), a.step(coords{1, 1}, 1))
		up := d.isMas(a.step(coords{1, -1}, 1), a.step(coords{-1, 1}, 1))
		if down && up {
			count++
		}
	}
	return strconv.Itoa(count)
}

func (d *Day04) isMas(end1, end2 coords) bool {
	a, b := d.grid.get(end1), d.grid.get(end2)
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
