// Package bilingual evaluates a pair of bilingual word embeddings directly.
//
// WordSimilarity correlates embedding cosine similarity with human judgments
// from a word-similarity benchmark. LexiconInduction translates dictionary
// words by nearest-neighbour search in the other language and reports
// Precision@1 and Precision@5.
package bilingual
