package sememeval

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the report
// package ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordLoad is called after each dataset file was read.
	RecordLoad(name string, kept int, duration time.Duration, err error)

	// RecordSearch is called after each nearest-neighbour ranking.
	// candidates is the number of source vectors scanned.
	RecordSearch(k, candidates int, duration time.Duration)

	// RecordEvaluate is called after each evaluated word.
	RecordEvaluate(rec *Record, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration)         {}
func (NoopMetricsCollector) RecordEvaluate(*Record, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	LoadCount          atomic.Int64
	LoadErrors         atomic.Int64
	LoadedItems        atomic.Int64
	SearchCount        atomic.Int64
	SearchCandidates   atomic.Int64
	SearchTotalNanos   atomic.Int64
	EvaluateCount      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateDegenerate atomic.Int64
	EvaluateTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(_ string, kept int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadedItems.Add(int64(kept))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ int, candidates int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchCandidates.Add(int64(candidates))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(rec *Record, duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluateErrors.Add(1)
		return
	}
	if rec.Degenerate {
		b.EvaluateDegenerate.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:          b.LoadCount.Load(),
		LoadErrors:         b.LoadErrors.Load(),
		LoadedItems:        b.LoadedItems.Load(),
		SearchCount:        b.SearchCount.Load(),
		SearchCandidates:   b.SearchCandidates.Load(),
		SearchAvgNanos:     avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		EvaluateCount:      b.EvaluateCount.Load(),
		EvaluateErrors:     b.EvaluateErrors.Load(),
		EvaluateDegenerate: b.EvaluateDegenerate.Load(),
		EvaluateAvgNanos:   avg(b.EvaluateTotalNanos.Load(), b.EvaluateCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount          int64
	LoadErrors         int64
	LoadedItems        int64
	SearchCount        int64
	SearchCandidates   int64
	SearchAvgNanos     int64
	EvaluateCount      int64
	EvaluateErrors     int64
	EvaluateDegenerate int64
	EvaluateAvgNanos   int64
}
