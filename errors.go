package sememeval

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWord is returned for a word without a target vector or without
	// gold labels.
	ErrUnknownWord = errors.New("word has no vector or no gold labels")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyDataset is returned when either side has no evaluable words.
	ErrEmptyDataset = errors.New("dataset has no evaluable words")
)

// ErrDimensionMismatch indicates that the source and target embeddings have
// different dimensions.
type ErrDimensionMismatch struct {
	Source int
	Target int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: source %d, target %d", e.Source, e.Target)
}

// LoadError reports a dataset file that could not be read.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
