package bilingual

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sememeval/loader"
	"github.com/hupe1980/sememeval/metric"
	"github.com/hupe1980/sememeval/testutil"
	"github.com/hupe1980/sememeval/vectorstore"
)

func newStore(t *testing.T, dim int, vecs map[string][]float32) *vectorstore.Store {
	t.Helper()
	s, err := vectorstore.New(dim)
	require.NoError(t, err)
	for w, v := range vecs {
		require.NoError(t, s.Add(w, v))
	}
	return s
}

func TestWordSimilarity(t *testing.T) {
	store := newStore(t, 4, map[string][]float32{
		"a": testutil.Axis(4, 0),
		"b": testutil.WithSimilarity(4, 0.9),
		"c": testutil.WithSimilarity(4, 0.5),
		"d": testutil.WithSimilarity(4, 0.1),
	})

	pairs := []loader.WordPair{
		{Word1: "a", Word2: "b", Score: 9},
		{Word1: "a", Word2: "c", Score: 5},
		{Word1: "a", Word2: "d", Score: 1},
		{Word1: "a", Word2: "zzz", Score: 3},
	}

	res := WordSimilarity(store, pairs)
	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Tested)
	assert.Equal(t, 1, res.Skipped)
	assert.InDelta(t, 1.0, res.Score, 1e-6)
}

func TestWordSimilarity_Undefined(t *testing.T) {
	store := newStore(t, 2, map[string][]float32{"a": testutil.Axis(2, 0)})

	res := WordSimilarity(store, []loader.WordPair{{Word1: "a", Word2: "a", Score: 1}})
	assert.ErrorIs(t, res.Err, metric.ErrUndefined)
	assert.Equal(t, 1, res.Tested)
}

// inductionFixture maps en words onto zh words with the same axis, so every
// word translates correctly at rank 1.
func inductionFixture(t *testing.T, n int) (zh, en *vectorstore.Store, dict *loader.Dictionary) {
	t.Helper()
	zhVecs := make(map[string][]float32, n)
	enVecs := make(map[string][]float32, n)
	var sb strings.Builder
	for i := range n {
		zhWord := fmt.Sprintf("词%02d", i)
		enWord := fmt.Sprintf("word%02d", i)
		zhVecs[zhWord] = testutil.Axis(n, i)
		enVecs[enWord] = testutil.Axis(n, i)
		fmt.Fprintf(&sb, "%s\t%s/别的\n", strings.ToUpper(enWord), zhWord)
	}
	sb.WriteString("missing\t缺\n")

	dict, _, err := loader.ReadDictionary(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return newStore(t, n, zhVecs), newStore(t, n, enVecs), dict
}

func TestLexiconInduction(t *testing.T) {
	zh, en, dict := inductionFixture(t, 12)

	res, err := LexiconInduction(context.Background(), zh, en, dict)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Tested, "words without a query vector are passed over")
	assert.Equal(t, 1.0, res.P1)
	assert.Equal(t, 1.0, res.P5)
	assert.NotContains(t, res.Words, "missing")
}

func TestLexiconInduction_MaxTest(t *testing.T) {
	zh, en, dict := inductionFixture(t, 12)

	a, err := LexiconInduction(context.Background(), zh, en, dict, WithMaxTest(5), WithSeed(3))
	require.NoError(t, err)
	b, err := LexiconInduction(context.Background(), zh, en, dict, WithMaxTest(5), WithSeed(3))
	require.NoError(t, err)

	assert.Equal(t, 5, a.Tested)
	assert.Equal(t, a.Words, b.Words)
}

func TestLexiconInduction_Precision(t *testing.T) {
	zh := newStore(t, 4, map[string][]float32{
		"猫": testutil.WithSimilarity(4, 0.9),
		"狗": testutil.WithSimilarity(4, 0.95),
		"桌": testutil.Axis(4, 3),
	})
	en := newStore(t, 4, map[string][]float32{
		"cat": testutil.Axis(4, 0),
	})
	dict, _, err := loader.ReadDictionary(strings.NewReader("cat\t猫\n"))
	require.NoError(t, err)

	res, err := LexiconInduction(context.Background(), zh, en, dict)
	require.NoError(t, err)
	require.Equal(t, 1, res.Tested)
	assert.Equal(t, 0.0, res.P1)
	assert.Equal(t, 1.0, res.P5)
	assert.Equal(t, []bool{false}, res.Hit1)
}

func TestLexiconInduction_Canceled(t *testing.T) {
	zh, en, dict := inductionFixture(t, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LexiconInduction(ctx, zh, en, dict)
	assert.ErrorIs(t, err, context.Canceled)
}
