package main

import (
	"dependencySheet/contracts"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

type SequentialGenerator struct {
	Start int
	End   int
	Step  int
}

// Generate behaves like a half-open range: End is never included
func (g *SequentialGenerator) Generate() []int {
	numbers := make([]int, 0)
	if g.Step == 0 {
		return numbers
	}

	for n := g.Start; (g.Step > 0 && n < g.End) || (g.Step < 0 && n > g.End); n += g.Step {
		numbers = append(numbers, n)
	}

	return numbers
}

type RandomGenerator struct {
	Mean   float64
	StdDev float64
	N      int
	rng    *rand.Rand
}

func NewRandomGenerator(mean float64, stdDev float64, n int, seed uint64) *RandomGenerator {
	return &RandomGenerator{
		Mean:   mean,
		StdDev: stdDev,
		N:      n,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate draws N normally distributed samples, truncated toward zero
func (g *RandomGenerator) Generate() []int {
	numbers := make([]int, 0, max(g.N, 0))
	for i := 0; i < g.N; i++ {
		numbers = append(numbers, int(g.Mean+g.StdDev*g.rng.NormFloat64()))
	}

	return numbers
}

type FibonacciGenerator struct {
	N int
}

func (g *FibonacciGenerator) Generate() []int {
	numbers := make([]int, 0, max(g.N, 0))
	a, b := 0, 1
	for i := 0; i < g.N; i++ {
		numbers = append(numbers, a)
		a, b = b, a+b
	}

	return numbers
}

// MaxGeneratedNumbers caps how many numbers a single request may generate
const MaxGeneratedNumbers = 100_000

// float request params above this magnitude no longer convert to int exactly
const maxSequentialBound = 1 << 53

type GeneratorFactory func(params contracts.StrategyParams) (contracts.NumberGenerator, error)

// GeneratorRegistry maps a generator kind to the factory building it
type GeneratorRegistry map[string]GeneratorFactory

func NewGeneratorRegistry(seed func() uint64) GeneratorRegistry {
	return GeneratorRegistry{
		"sequential": func(params contracts.StrategyParams) (contracts.NumberGenerator, error) {
			start, startErr := boundParam(params, "start", 0)
			end, endErr := boundParam(params, "end", 0)
			step, stepErr := boundParam(params, "step", 1)
			if err := errors.Join(startErr, endErr, stepErr); err != nil {
				return nil, err
			}

			generator := &SequentialGenerator{Start: start, End: end, Step: step}
			if generator.Step != 0 && (generator.End-generator.Start)/generator.Step > MaxGeneratedNumbers {
				return nil, fmt.Errorf("sequential %d..%d step %d: %w",
					generator.Start, generator.End, generator.Step, contracts.TooManyNumbersError)
			}

			return generator, nil
		},
		"random": func(params contracts.StrategyParams) (contracts.NumberGenerator, error) {
			n, err := countParam(params, "n")
			if err != nil {
				return nil, err
			}

			return NewRandomGenerator(params.Get("mean", 0), params.Get("stddev", 1), n, seed()), nil
		},
		"fibonacci": func(params contracts.StrategyParams) (contracts.NumberGenerator, error) {
			n, err := countParam(params, "n")
			if err != nil {
				return nil, err
			}

			return &FibonacciGenerator{N: n}, nil
		},
	}
}

func (r GeneratorRegistry) Create(kind string, params contracts.StrategyParams) (contracts.NumberGenerator, error) {
	factory, ok := r[kind]
	if !ok {
		return nil, fmt.Errorf("generator `%s`: %w", kind, contracts.UnknownStrategyError)
	}

	return factory(params)
}

func countParam(params contracts.StrategyParams, name string) (int, error) {
	count := max(params.Get(name, 0), 0)
	if count > MaxGeneratedNumbers {
		return 0, fmt.Errorf("%s=%v above %d: %w", name, count, MaxGeneratedNumbers, contracts.TooManyNumbersError)
	}

	return int(count), nil
}

func boundParam(params contracts.StrategyParams, name string, fallback float64) (int, error) {
	value := params.Get(name, fallback)
	if math.Abs(value) > maxSequentialBound {
		return 0, fmt.Errorf("%s=%v: %w", name, value, contracts.TooManyNumbersError)
	}

	return int(value), nil
}
