// Package loader parses the plain-text inputs of an evaluation run.
//
// Every reader takes an io.Reader, so the same code serves local files, object
// storage and compressed blobs (see Decompress). Formats:
//
//	embeddings   <word> <f1> ... <fdim>          one word per line
//	vocabulary   <target>|<source>               one label per line
//	lexicon      <word>\t{a,b};{c}               senses separated by ';'
//	frequencies  <word> <count>
//	word-sim     <word1> <word2> <score>
//	dictionary   <word>\t<t1>/<t2>/...
//
// Lines that do not fit an optional format are skipped and counted in Stats;
// structural errors in required inputs are reported as *ParseError.
package loader
