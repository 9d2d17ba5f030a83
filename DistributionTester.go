package main

import "dependencySheet/contracts"

// DistributionTester reports the 10th..90th percentiles of the generated numbers
type DistributionTester struct {
	generator  contracts.NumberGenerator
	calculator contracts.PercentileCalculator
}

func NewDistributionTester(generator contracts.NumberGenerator, calculator contracts.PercentileCalculator) *DistributionTester {
	return &DistributionTester{generator: generator, calculator: calculator}
}

func (d *DistributionTester) Run() ([]contracts.PercentileResult, error) {
	numbers := d.generator.Generate()

	results := make([]contracts.PercentileResult, 0, 9)
	for percentile := 10; percentile < 100; percentile += 10 {
		value, err := d.calculator.Percentile(numbers, float64(percentile))
		if err != nil {
			return nil, err
		}
		results = append(results, contracts.PercentileResult{Percentile: percentile, Value: value})
	}

	return results, nil
}
