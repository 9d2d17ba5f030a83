package contracts

type NumberGenerator interface {
	Generate() []int
}

type PercentileCalculator interface {
	Percentile(numbers []int, percentile float64) (float64, error)
}

// StrategyParams carries the request parameters a registered factory may read
type StrategyParams map[string]float64

type PercentileResult struct {
	Percentile int     `json:"percentile"`
	Value      float64 `json:"value"`
}

func (p StrategyParams) Get(name string, fallback float64) float64 {
	if value, ok := p[name]; ok {
		return value
	}

	return fallback
}
