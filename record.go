package sememeval

import (
	"time"

	"github.com/hupe1980/sememeval/scoring"
	"github.com/hupe1980/sememeval/searcher"
)

// Record is the evaluation of one target word.
type Record struct {
	Word string `json:"word"`

	// Frequency is the corpus count of Word; HasFrequency is false when the
	// frequency file does not list it.
	Frequency    int64 `json:"frequency,omitempty"`
	HasFrequency bool  `json:"has_frequency"`

	Neighbors []searcher.Neighbor  `json:"neighbors"`
	Scores    []scoring.LabelScore `json:"scores"`
	Selected  []string             `json:"selected"`
	Gold      []string             `json:"gold"`

	AP float64 `json:"ap"`
	F1 float64 `json:"f1"`

	// Degenerate is set when no predicted sememe is in the gold set. AP is 0
	// and still counts toward the mean.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Params are the parameters a run was made with.
type Params struct {
	K         int     `json:"k"`
	Decay     float64 `json:"decay"`
	Threshold float64 `json:"threshold"`
	TestNum   int     `json:"test_num"`
	Seed      uint64  `json:"seed"`
	Workers   int     `json:"workers"`
}

// Summary aggregates a run.
type Summary struct {
	RunID       string        `json:"run_id"`
	Words       int           `json:"words"`
	MAP         float64       `json:"map"`
	MeanF1      float64       `json:"mean_f1"`
	Degenerate  int           `json:"degenerate"`
	Failed      int           `json:"failed"`
	SourceWords int           `json:"source_words"`
	TargetWords int           `json:"target_words"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	StartedAt   time.Time     `json:"started_at"`
	Params      Params        `json:"params"`
}

// Result is the outcome of Evaluator.Run.
type Result struct {
	Summary Summary  `json:"summary"`
	Records []Record `json:"-"`
}
