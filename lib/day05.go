package lib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	mustRegister(5, NewDay05)
}

// RuleSet maps a page to the pages that must be printed after it.
type RuleSet map[uint32]map[uint32]struct{}

func (rs RuleSet) add(before, after uint32) {
	afters, ok := rs[before]
	if !ok {
		afters = map[uint32]struct{}{}
		rs[before] = afters
	}
	afters[after] = struct{}{}
}

type pageSequence []uint32

// firstViolation returns the first pair (j, i), j < i, where the page at i
// must come after the page at j.
func (s pageSequence) firstViolation(rules RuleSet) (int, int, bool) {
	for i := 1; i < len(s); i++ {
		mustComeAfter, ok := rules[s[i]]
		if !ok {
			continue
		}
		for j := 0; j < i; j++ {
			if _, violates := mustComeAfter[s[j]]; violates {
				return j, i, true
			}
		}
	}
	return 0, 0, false
}

func (s pageSequence) middle() uint32 {
	return s[len(s)/2]
}

// reordered swaps violating pairs until none remain. It returns false when
// the sequence was already in order.
func (s pageSequence) reordered(rules RuleSet) (pageSequence, bool) {
	if _, _, found := s.firstViolation(rules); !found {
		return nil, false
	}
	out := append(pageSequence{}, s...)
	for {
		j, i, found := out.firstViolation(rules)
		if !found {
			return out, true
		}
		out[j], out[i] = out[i], out[j]
	}
}

type Day05 struct {
	rules     RuleSet
	sequences []pageSequence
}

func NewDay05(input string) (Solver, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	rulesText, sequencesText, found := strings.Cut(input, "\n\n")
	if !found {
		return nil, errors.New("expected a blank line between rules and updates")
	}

	d := &Day05{rules: RuleSet{}, sequences: []pageSequence{}}

	for i, line := range inputLines(rulesText) {
		beforeText, afterText, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("rule %d: missing '|' in %q", i+1, line)
		}
		before, err := parseUint32(beforeText)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		after, err := parseUint32(afterText)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		d.rules.add(before, after)
	}

	for i, line := range inputLines(sequencesText) {
		if strings.HasPrefix(line, "#") {
			continue
		}
		seq := pageSequence{}
		for _, field := range strings.Split(line, ",") {
			page, err := parseUint32(field)
			if err != nil {
				return nil, fmt.Errorf("update %d: %w", i+1, err)
			}
			seq = append(seq, page)
		}
		d.sequences = append(d.sequences, seq)
	}

	return d, nil
}

func (d *Day05) Part1() string {
	var total uint32
	for _, s := range d.sequences {
		if _, _, found := s.firstViolation(d.rules); !found {
			total += s.middle()
		}
	}
	return strconv.FormatUint(uint64(total), 10)
}

// Part2 repairs only the updates that were out of order.
func (d *Day05) Part2() string {
	var total uint32
	for _, s := range d.sequences {
		if fixed, changed := s.reordered(d.rules); changed {
			total += fixed.middle()
		}
	}
	return strconv.FormatUint(uint64(total), 10)
}
