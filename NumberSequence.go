package main

import (
	"dependencySheet/contracts"
	"slices"
)

// NumberSequence collects numbers and pushes the whole collection to its observers on every append
type NumberSequence struct {
	numbers   []int
	observers []contracts.SequenceObserver
}

func NewNumberSequence() *NumberSequence {
	return &NumberSequence{
		numbers:   make([]int, 0),
		observers: make([]contracts.SequenceObserver, 0),
	}
}

func (s *NumberSequence) Attach(observer contracts.SequenceObserver) {
	s.observers = append(s.observers, observer)
}

// Detach is a no-op for observers that were never attached
func (s *NumberSequence) Detach(observer contracts.SequenceObserver) {
	s.observers = slices.DeleteFunc(s.observers, func(attached contracts.SequenceObserver) bool {
		return attached == observer
	})
}

func (s *NumberSequence) Append(number int) {
	s.numbers = append(s.numbers, number)
	s.notify()
}

func (s *NumberSequence) Elements() []int {
	return slices.Clone(s.numbers)
}

func (s *NumberSequence) Results() map[string]any {
	results := make(map[string]any, len(s.observers))
	for _, observer := range s.observers {
		if result := observer.Result(); result != nil {
			results[observer.Name()] = result
		}
	}

	return results
}

func (s *NumberSequence) notify() {
	for _, observer := range s.observers {
		observer.Update(slices.Clone(s.numbers))
	}
}
