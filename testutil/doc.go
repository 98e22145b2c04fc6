// Package testutil provides testing utilities for sememeval.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded random embeddings and
// vectors with a prescribed cosine similarity to a reference axis.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UnitVectors(100, 200)
//
// # Controlled Similarity
//
//	query := testutil.Axis(200, 0)
//	near := testutil.WithSimilarity(200, 0.9) // dot(query, near) == 0.9
package testutil
