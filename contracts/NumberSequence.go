package contracts

type SequenceObserver interface {
	Name() string
	Update(numbers []int)
	Result() any
}

type SequenceReport struct {
	Id       string         `json:"id"`
	Elements []int          `json:"elements"`
	Results  map[string]any `json:"results"`
}

type SequenceService interface {
	Append(sequenceId string, number int) (*SequenceReport, error)
	Report(sequenceId string) (*SequenceReport, error)
}
