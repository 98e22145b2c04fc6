// Package report writes the outputs of a sememe prediction run: the per-word
// result table, a JSON run summary and a Prometheus metrics text file.
package report
