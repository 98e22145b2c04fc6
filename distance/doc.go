// Package distance provides vector similarity calculations for word embeddings.
//
// Embeddings are stored L2-normalized, so cosine similarity reduces to a dot
// product:
//
//	unit, ok := distance.NormalizeL2Copy(raw)
//	sim := distance.Dot(unit, other)
//
// Vectors with zero norm have no direction and cannot be normalized; the
// normalization helpers report false for them.
package distance
