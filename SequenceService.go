package main

import (
	"dependencySheet/contracts"
	"fmt"
	"github.com/puzpuzpuz/xsync/v4"
	"sync"
)

type sequenceEntry struct {
	mu       sync.Mutex
	sequence *NumberSequence
}

type SequenceService struct {
	sequences     *xsync.Map[string, *sequenceEntry]
	canonicalizer contracts.Canonicalizer
	metrics       *Metrics
	logger        contracts.Logger
}

func NewSequenceService(canonicalizer contracts.Canonicalizer, metrics *Metrics, logger contracts.Logger) *SequenceService {
	return &SequenceService{
		sequences:     xsync.NewMap[string, *sequenceEntry](),
		canonicalizer: canonicalizer,
		metrics:       metrics,
		logger:        logger,
	}
}

func (s *SequenceService) Append(sequenceId string, number int) (*contracts.SequenceReport, error) {
	sequenceId = s.canonicalizer.CanonicalizeSheetId(sequenceId)

	entry, ok := s.sequences.Load(sequenceId)
	if !ok {
		entry, _ = s.sequences.LoadOrStore(sequenceId, &sequenceEntry{sequence: s.newObservedSequence(sequenceId)})
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.sequence.Append(number)
	s.metrics.IncSequenceAppends()

	return s.report(sequenceId, entry.sequence), nil
}

func (s *SequenceService) Report(sequenceId string) (*contracts.SequenceReport, error) {
	sequenceId = s.canonicalizer.CanonicalizeSheetId(sequenceId)

	entry, ok := s.sequences.Load(sequenceId)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sequenceId, contracts.SequenceNotFoundError)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return s.report(sequenceId, entry.sequence), nil
}

func (s *SequenceService) newObservedSequence(sequenceId string) *NumberSequence {
	sequence := NewNumberSequence()
	sequence.Attach(NewJournalObserver(sequenceId, s.logger))
	sequence.Attach(&SumObserver{})
	sequence.Attach(&AverageObserver{})
	sequence.Attach(&MedianObserver{})

	return sequence
}

func (s *SequenceService) report(sequenceId string, sequence *NumberSequence) *contracts.SequenceReport {
	return &contracts.SequenceReport{
		Id:       sequenceId,
		Elements: sequence.Elements(),
		Results:  sequence.Results(),
	}
}
