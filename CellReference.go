package main

import (
	"dependencySheet/contracts"
	"fmt"
	"strconv"
)

const MaxColumns = 'Z' - 'A' + 1

// ParseReference maps `B3` to row 2, column 1. Bounds are not checked here.
func ParseReference(reference string) (row int, col int, err error) {
	if len(reference) < 2 || reference[0] < 'A' || reference[0] > 'Z' {
		return 0, 0, fmt.Errorf("reference `%s`: %w", reference, contracts.OutOfRangeError)
	}

	number, err := strconv.Atoi(reference[1:])
	if err != nil || number < 1 || reference[1] == '+' {
		return 0, 0, fmt.Errorf("reference `%s`: %w", reference, contracts.OutOfRangeError)
	}

	return number - 1, int(reference[0] - 'A'), nil
}

func FormatReference(row int, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}
