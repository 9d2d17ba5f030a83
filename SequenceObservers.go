package main

import (
	"dependencySheet/contracts"
	"slices"
)

type SumObserver struct {
	sum *int
}

func (o *SumObserver) Name() string {
	return "sum"
}

func (o *SumObserver) Update(numbers []int) {
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	o.sum = &sum
}

func (o *SumObserver) Result() any {
	if o.sum == nil {
		return nil
	}
	return *o.sum
}

type AverageObserver struct {
	average *float64
}

func (o *AverageObserver) Name() string {
	return "average"
}

func (o *AverageObserver) Update(numbers []int) {
	if len(numbers) == 0 {
		o.average = nil
		return
	}

	sum := 0
	for _, n := range numbers {
		sum += n
	}
	average := float64(sum) / float64(len(numbers))
	o.average = &average
}

func (o *AverageObserver) Result() any {
	if o.average == nil {
		return nil
	}
	return *o.average
}

type MedianObserver struct {
	median *float64
}

func (o *MedianObserver) Name() string {
	return "median"
}

func (o *MedianObserver) Update(numbers []int) {
	if len(numbers) == 0 {
		o.median = nil
		return
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	middle := len(sorted) / 2
	median := float64(sorted[middle])
	if len(sorted)%2 == 0 {
		median = float64(sorted[middle-1]+sorted[middle]) / 2
	}
	o.median = &median
}

func (o *MedianObserver) Result() any {
	if o.median == nil {
		return nil
	}
	return *o.median
}

// JournalObserver records every update in the structured log
type JournalObserver struct {
	sequenceId string
	logger     contracts.Logger
	entries    int
}

func NewJournalObserver(sequenceId string, logger contracts.Logger) *JournalObserver {
	return &JournalObserver{sequenceId: sequenceId, logger: logger}
}

func (o *JournalObserver) Name() string {
	return "journal_entries"
}

func (o *JournalObserver) Update(numbers []int) {
	o.entries++
	o.logger.Info("sequence updated", "sequence", o.sequenceId, "elements", numbers)
}

func (o *JournalObserver) Result() any {
	return o.entries
}
