package main

import (
	"dependencySheet/contracts"
	"fmt"
	"math"
	"slices"
)

type SortArrayCalculator struct{}

func (c *SortArrayCalculator) Percentile(numbers []int, percentile float64) (float64, error) {
	sorted, err := sortedCopy(numbers)
	if err != nil {
		return 0, err
	}

	n := len(sorted)
	index := int(math.RoundToEven(percentile*float64(n)/100+0.5)) + 1
	index = min(max(index, 0), n-1)

	return float64(sorted[index]), nil
}

type InterpolatedCalculator struct{}

// Percentile interpolates linearly between the ranks placed at 100*(i+0.5)/n
func (c *InterpolatedCalculator) Percentile(numbers []int, percentile float64) (float64, error) {
	sorted, err := sortedCopy(numbers)
	if err != nil {
		return 0, err
	}

	n := len(sorted)
	for i := 0; i < n; i++ {
		position := 100 * (float64(i) + 0.5) / float64(n)
		if (i == 0 && percentile < position) || (i == n-1 && percentile >= position) {
			return float64(sorted[i]), nil
		}

		nextPosition := 100 * (float64(i) + 1.5) / float64(n)
		if percentile >= position && percentile <= nextPosition {
			value := float64(sorted[i]) + float64(n)*(percentile-position)*float64(sorted[i+1]-sorted[i])/100
			return math.Round(value*100) / 100, nil
		}
	}

	return float64(sorted[n-1]), nil
}

type CalculatorRegistry map[string]contracts.PercentileCalculator

func NewCalculatorRegistry() CalculatorRegistry {
	return CalculatorRegistry{
		"sort_array":   &SortArrayCalculator{},
		"interpolated": &InterpolatedCalculator{},
	}
}

func (r CalculatorRegistry) Get(kind string) (contracts.PercentileCalculator, error) {
	calculator, ok := r[kind]
	if !ok {
		return nil, fmt.Errorf("calculator `%s`: %w", kind, contracts.UnknownStrategyError)
	}

	return calculator, nil
}

func sortedCopy(numbers []int) ([]int, error) {
	if len(numbers) == 0 {
		return nil, contracts.EmptyInputError
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	return sorted, nil
}
