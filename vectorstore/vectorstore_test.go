package vectorstore

import (
	"testing"

	"github.com/hupe1980/sememeval/distance"
	"github.com/hupe1980/sememeval/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Add(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)

	require.NoError(t, s.Add("cat", []float32{3, 4}))

	v, ok := s.Vector("cat")
	require.True(t, ok)
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)

	t.Run("WrongDimension", func(t *testing.T) {
		err := s.Add("dog", []float32{1, 2, 3})
		assert.ErrorIs(t, err, ErrWrongDimension)
		assert.False(t, s.Contains("dog"))
	})

	t.Run("ZeroNorm", func(t *testing.T) {
		err := s.Add("void", []float32{0, 0})
		assert.ErrorIs(t, err, ErrZeroNorm)
		assert.False(t, s.Contains("void"))
	})

	t.Run("DuplicateReplaces", func(t *testing.T) {
		require.NoError(t, s.Add("bird", []float32{0, 2}))
		require.NoError(t, s.Add("cat", []float32{2, 0}))
		v, _ := s.Vector("cat")
		assert.InDeltaSlice(t, []float32{1, 0}, v, 1e-6)
		assert.Equal(t, []string{"cat", "bird"}, s.Words())
	})

	t.Run("ZeroNormKeepsVector", func(t *testing.T) {
		err := s.Add("cat", []float32{0, 0})
		assert.ErrorIs(t, err, ErrZeroNorm)
		v, _ := s.Vector("cat")
		assert.InDeltaSlice(t, []float32{1, 0}, v, 1e-6)
	})

	assert.Equal(t, 2, s.Len())
}

func TestStore_InvalidDimension(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
}

func TestStore_AllVectorsAreUnit(t *testing.T) {
	rng := testutil.NewRNG(4711)
	s, err := New(200)
	require.NoError(t, err)

	for i, vec := range rng.UniformRangeVectors(50, 200) {
		require.NoError(t, s.Add(testutil.Word(i), vec))
	}

	for _, v := range s.All() {
		assert.InDelta(t, 1.0, distance.Norm(v), 1e-6)
	}
}

func TestStore_OrderAndFilter(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	for _, w := range []string{"c", "a", "b", "d"} {
		require.NoError(t, s.Add(w, []float32{1, 1}))
	}

	assert.Equal(t, []string{"c", "a", "b", "d"}, s.Words())

	var seen []string
	for w := range s.All() {
		seen = append(seen, w)
		if w == "b" {
			break
		}
	}
	assert.Equal(t, []string{"c", "a", "b"}, seen)

	f := s.Filter(func(w string) bool { return w != "a" })
	assert.Equal(t, []string{"c", "b", "d"}, f.Words())
	assert.False(t, f.Contains("a"))
	v, ok := f.Vector("d")
	require.True(t, ok)
	assert.InDelta(t, 1.0, distance.Norm(v), 1e-6)
}

func TestStore_VectorIsCopied(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	src := []float32{1, 0}
	require.NoError(t, s.Add("x", src))
	src[0] = 0
	src[1] = 1

	v, _ := s.Vector("x")
	assert.Equal(t, []float32{1, 0}, v)
}
