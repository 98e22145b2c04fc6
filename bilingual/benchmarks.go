package bilingual

// Benchmark names of the standard evaluation data. Word-similarity files are
// stored as <name>.txt.
var (
	SourceWordSim = []string{"wordsim-240", "wordsim-297"}
	TargetWordSim = []string{"wordsim-353", "SimLex-999"}
)

// DictionaryFile is the target-to-source dictionary used for lexicon induction.
const DictionaryFile = "en2zh_dict.txt"

// WordSimFile returns the file name of a word-similarity benchmark.
func WordSimFile(name string) string { return name + ".txt" }
