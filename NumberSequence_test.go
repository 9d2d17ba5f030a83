package main

import (
	"bytes"
	"dependencySheet/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type recordingSequenceObserver struct {
	updates [][]int
}

func (o *recordingSequenceObserver) Name() string {
	return "recording"
}

func (o *recordingSequenceObserver) Update(numbers []int) {
	o.updates = append(o.updates, numbers)
}

func (o *recordingSequenceObserver) Result() any {
	return len(o.updates)
}

func TestNumberSequence_Append(t *testing.T) {
	sequence := NewNumberSequence()
	observer := &recordingSequenceObserver{}
	sequence.Attach(observer)

	sequence.Append(3)
	sequence.Append(1)

	assert.Equal(t, [][]int{{3}, {3, 1}}, observer.updates)
	assert.Equal(t, []int{3, 1}, sequence.Elements())

	// observers get a copy of the collection
	observer.updates[1][0] = 100
	assert.Equal(t, []int{3, 1}, sequence.Elements())
}

func TestNumberSequence_Detach(t *testing.T) {
	sequence := NewNumberSequence()
	observer := &recordingSequenceObserver{}

	sequence.Detach(observer)
	sequence.Attach(observer)
	sequence.Append(1)
	sequence.Detach(observer)
	sequence.Append(2)

	assert.Len(t, observer.updates, 1)
	assert.Empty(t, sequence.Results())
}

func TestSequenceObservers(t *testing.T) {
	sum := &SumObserver{}
	average := &AverageObserver{}
	median := &MedianObserver{}

	for _, observer := range []contracts.SequenceObserver{sum, average, median} {
		assert.Nil(t, observer.Result(), observer.Name())
	}

	sequence := NewNumberSequence()
	sequence.Attach(sum)
	sequence.Attach(average)
	sequence.Attach(median)

	sequence.Append(4)
	sequence.Append(1)
	sequence.Append(7)
	assert.Equal(t, map[string]any{"sum": 12, "average": 4.0, "median": 4.0}, sequence.Results())

	sequence.Append(10)
	assert.Equal(t, map[string]any{"sum": 22, "average": 5.5, "median": 5.5}, sequence.Results())
}

func TestSequenceService(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewTextLogger(&out, "info")
	require.NoError(t, err)

	service := NewSequenceService(NewCanonicalizer(), NewMetrics(), logger)

	_, err = service.Report("numbers")
	assert.ErrorIs(t, err, contracts.SequenceNotFoundError)

	_, err = service.Append("Numbers", 2)
	require.NoError(t, err)
	report, err := service.Append("numbers", 6)
	require.NoError(t, err)

	assert.Equal(t, "numbers", report.Id)
	assert.Equal(t, []int{2, 6}, report.Elements)
	assert.Equal(t, 8, report.Results["sum"])
	assert.Equal(t, 4.0, report.Results["average"])
	assert.Equal(t, 4.0, report.Results["median"])
	assert.Equal(t, 2, report.Results["journal_entries"])

	assert.Contains(t, out.String(), "msg=\"sequence updated\" sequence=numbers elements=\"[2 6]\"")

	report, err = service.Report("numbers")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 6}, report.Elements)
}
