package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVocab(t *testing.T) *Vocabulary {
	t.Helper()
	v := NewVocabulary()
	for _, p := range []Pair{
		{"animal", "动物"},
		{"furniture", "家具"},
		{"human", "人"},
	} {
		_, err := v.Add(p.Target, p.Source)
		require.NoError(t, err)
	}
	return v
}

func TestVocabulary(t *testing.T) {
	v := newTestVocab(t)

	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Contains("animal|动物"))
	assert.False(t, v.Contains("animal"))

	id, err := v.Add("plant", "植物")
	require.NoError(t, err)
	assert.Equal(t, uint32(3), id)
	assert.Equal(t, 4, v.Len())

	t.Run("DuplicateKeepsID", func(t *testing.T) {
		id, err := v.Add("animal", "动物")
		require.NoError(t, err)
		assert.Equal(t, uint32(0), id)
		assert.Equal(t, 4, v.Len())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := v.Add("", "x")
		assert.ErrorIs(t, err, ErrEmptyLabel)
	})

	assert.Equal(t, "animal|动物", Pair{"animal", "动物"}.Label())
}

func TestLabelSet(t *testing.T) {
	v := newTestVocab(t)

	s := v.NewSet([]string{"human|人", "bogus", "animal|动物", "human|人"})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"human|人", "animal|动物"}, s.Labels())
	assert.True(t, s.Contains("animal|动物"))
	assert.False(t, s.Contains("furniture|家具"))
	assert.False(t, s.Contains("bogus"))

	var nilSet *LabelSet
	assert.True(t, nilSet.IsEmpty())
	assert.False(t, nilSet.Contains("animal|动物"))
}

func TestIndex(t *testing.T) {
	v := newTestVocab(t)
	idx := NewIndex(v)

	assert.True(t, idx.Add("猫", []string{"animal|动物"}))
	assert.True(t, idx.Add("桌子", []string{"furniture|家具", "unknown|未知"}))
	assert.False(t, idx.Add("空", []string{"unknown|未知"}))

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"猫", "桌子"}, idx.Words())
	assert.False(t, idx.Contains("空"))
	assert.Nil(t, idx.Labels("空"))
	assert.Equal(t, []string{"furniture|家具"}, idx.Labels("桌子"))

	t.Run("ReplaceOnLaterAdd", func(t *testing.T) {
		assert.True(t, idx.Add("猫", []string{"human|人", "furniture|家具"}))
		assert.Equal(t, []string{"human|人", "furniture|家具"}, idx.Labels("猫"))
		assert.Equal(t, []string{"猫", "桌子"}, idx.Words())
		assert.Equal(t, 2, idx.Len())
	})

	t.Run("FilteredAddKeepsSet", func(t *testing.T) {
		assert.False(t, idx.Add("猫", []string{"unknown|未知"}))
		assert.Equal(t, []string{"human|人", "furniture|家具"}, idx.Labels("猫"))
	})

	set, ok := idx.Set("猫")
	require.True(t, ok)
	assert.Equal(t, 2, set.Len())
	assert.False(t, set.Contains("animal|动物"))
	assert.Same(t, v, idx.Vocabulary())
}
