// Package lexicon implements the label vocabulary and the lexical resource
// index that maps words to their sememe labels.
//
// Labels are interned to dense uint32 IDs by the Vocabulary, and every word's
// label set is a Roaring bitmap over those IDs. Only labels present in the
// vocabulary survive indexing; words left without labels are dropped.
//
//	vocab := lexicon.NewVocabulary()
//	vocab.Add("animal", "动物")
//	idx := lexicon.NewIndex(vocab)
//	idx.Add("cat", []string{"animal|动物", "unknown"}) // keeps 1 label
package lexicon
