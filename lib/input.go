package lib

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
)

const (
	inputFileName  = "input.txt"
	sampleFileName = "sample.txt"
)

// InputPath returns where the input for day lives under dir.
func InputPath(dir string, day int, sample bool) string {
	fileName := inputFileName
	if sample {
		fileName = sampleFileName
	}
	return path.Join(dir, fmt.Sprintf("%02d", day), fileName)
}

func ReadInput(dir string, day int, sample bool) (string, error) {
	filePath := InputPath(dir, day, sample)
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading input for day %02d: %w", day, err)
	}
	return string(bytes), nil
}

// InputDays lists the days that have a directory under dir, in ascending
// order. Entries that are not two-digit day numbers are skipped.
func InputDays(dir string) ([]int, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	days := []int{}
	for _, file := range files {
		if !file.IsDir() || len(file.Name()) != 2 {
			continue
		}
		day, err := strconv.Atoi(file.Name())
		if err != nil || day < 1 {
			continue
		}
		days = append(days, day)
	}
	sort.Ints(days)
	return days, nil
}
