package main

import (
	"dependencySheet/contracts"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestMetrics_ObserveCellSet(t *testing.T) {
	metrics := NewMetrics()

	metrics.ObserveCellSet(time.Now(), nil)
	metrics.ObserveCellSet(time.Now(), nil)
	metrics.ObserveCellSet(time.Now(), fmt.Errorf("cell A1: %w", contracts.CycleError))
	metrics.ObserveCellSet(time.Now(), contracts.OutOfRangeError)
	metrics.ObserveCellSet(time.Now(), errors.New("disk full"))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.cellSets.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cellSets.WithLabelValues("cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cellSets.WithLabelValues("out_of_range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cellSets.WithLabelValues("error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.cellSets.WithLabelValues("parse")))
}

func TestSetResultLabel(t *testing.T) {
	assert.Equal(t, "parse", setResultLabel(contracts.ParseError))
	assert.Equal(t, "undefined", setResultLabel(fmt.Errorf("x: %w", contracts.UndefinedReferenceError)))
}
