package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sememeval"
	"github.com/hupe1980/sememeval/report"
)

func TestParseFlags_Positional(t *testing.T) {
	opts, err := parseFlags([]string{"-k", "50", "out/", "data/", "300", "2"})
	require.NoError(t, err)

	cfg, err := resolveConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "out/", cfg.Output)
	assert.Equal(t, "data/", cfg.Data)
	assert.Equal(t, 300, cfg.TestNum)
	assert.Equal(t, 2, cfg.Mode)
	assert.Equal(t, 50, cfg.K)
	assert.Equal(t, sememeval.DefaultDecay, cfg.Decay)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"out", "data", "many"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"a", "b", "1", "2", "3"})
	assert.Error(t, err)

	opts, err := parseFlags(nil)
	require.NoError(t, err)
	_, err = resolveConfig(opts)
	assert.Error(t, err, "output is required")

	opts, err = parseFlags([]string{"-mode", "3", "out"})
	require.NoError(t, err)
	_, err = resolveConfig(opts)
	assert.Error(t, err)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": "s3://bucket/emb", "k": 20, "workers": 2}`), 0o600))

	opts, err := parseFlags([]string{"-config", path, "-workers", "8"})
	require.NoError(t, err)

	cfg, err := resolveConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.K)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, int64(8), cfg.Resource.MaxWorkers)
	assert.Equal(t, "s3://bucket/emb/eval_data", cfg.Data)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "eval_data"), 0o755))

	files := sememeval.DefaultFiles()
	write(filepath.Join("eval_data", files.Vocabulary), "ANIMAL|动物\nFURNITURE|家具\n")
	write(filepath.Join("eval_data", files.SourceLexicon), "猫\t{ANIMAL|动物}\n狗\t{ANIMAL|动物}\n桌子\t{FURNITURE|家具}\n")
	write(filepath.Join("eval_data", files.TargetLexicon), "cat\t{ANIMAL|动物}\n")
	write(files.SourceVectors, "猫 0.9 0.4358899 0\n狗 0.8 0.6 0\n桌子 0.1 0.99498744 0\n")
	write(files.TargetVectors, "cat 1 0 0\n")
	write(files.Frequencies, "cat 120\n")

	opts, err := parseFlags([]string{"-dim", "3", "-k", "2", "-log-level", "error", dir, "", "0", "1"})
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), opts))

	table, err := os.ReadFile(filepath.Join(dir, report.ResultsFile))
	require.NoError(t, err)
	assert.Equal(t, report.Header+"\ncat\t120\t1.0\t1.0\n", string(table))

	summary, err := os.ReadFile(filepath.Join(dir, report.SummaryFile))
	require.NoError(t, err)
	assert.Contains(t, string(summary), `"map": 1`)

	prom, err := os.ReadFile(filepath.Join(dir, report.MetricsFile))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(prom), "sememeval_words_evaluated_total"))
}
