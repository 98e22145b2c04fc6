// Package sememeval evaluates cross-lingual word embeddings by predicting
// sememes (the minimal semantic labels of a lexical resource such as HowNet)
// for words of one language from their nearest neighbours in another.
//
// # Quick Start
//
//	ds, _ := sememeval.LoadDataset(ctx, embeddings, evalData, sememeval.DefaultFiles())
//	ev, _ := sememeval.New(ds,
//	    sememeval.WithK(100),
//	    sememeval.WithDecay(0.8),
//	    sememeval.WithThreshold(0.5),
//	    sememeval.WithTestNum(1000),
//	)
//	res, _ := ev.Run(ctx)
//	fmt.Println(res.Summary.MAP, res.Summary.MeanF1)
//
// # Prediction
//
// For a target word the evaluator ranks all source words by cosine similarity
// (dot product of unit vectors) and keeps the top K. Every sememe of the
// neighbour at 1-based rank r receives sim·c^r; the accumulated scores are
// sorted descending. Average Precision is computed over the full ranking and
// F1 over the labels scoring above the threshold (or the single best label
// when none does).
//
// # Determinism
//
// The evaluated words are a seeded permutation of the target vocabulary, so a
// run with the same inputs, seed and options reproduces the same records,
// whether words are evaluated sequentially or by several workers.
package sememeval
