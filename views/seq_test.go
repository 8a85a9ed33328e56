package views_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqview/views"
)

func collect[T any](t *testing.T, s views.Seq[T]) []T {
	t.Helper()
	out, err := views.Collect(s)
	require.NoError(t, err)
	return out
}

func TestFromSlice(t *testing.T) {
	assert := assert.New(t)

	s := views.FromSlice([]int{1, 2, 3})
	caps := s.Caps()
	assert.True(caps.Valid())
	assert.True(caps.RandomAccess)
	assert.True(caps.Sized)
	assert.True(caps.Common)
	assert.True(caps.ConstIterable)
	assert.True(caps.Mutable)
	assert.False(caps.SinglePass)

	assert.Equal([]int{1, 2, 3}, collect(t, s))
	// multi-pass: a second traversal sees the same elements
	assert.Equal([]int{1, 2, 3}, collect(t, s))

	n, ok := views.Size(s)
	assert.True(ok)
	assert.Equal(3, n)

	v, ok := views.At(s, 1)
	assert.True(ok)
	assert.Equal(2, v)
}

func TestFromString(t *testing.T) {
	assert := assert.New(t)

	s := views.FromString("foo")
	assert.False(s.Caps().Mutable, "string views are read-only")
	got, err := views.String(s)
	assert.NoError(err)
	assert.Equal("foo", got)
}

func TestFromSeq(t *testing.T) {
	assert := assert.New(t)

	s := views.FromSeq(slices.Values([]int{4, 5, 6}))
	caps := s.Caps()
	assert.True(caps.Valid())
	assert.True(caps.Forward)
	assert.False(caps.Sized)
	assert.False(caps.RandomAccess)
	assert.False(caps.SinglePass)

	assert.Equal([]int{4, 5, 6}, collect(t, s))
	assert.Equal([]int{4, 5, 6}, collect(t, s), "replayable input is re-traversable")

	_, ok := views.Size(s)
	assert.False(ok)
	_, ok = views.At(s, 0)
	assert.False(ok)
}

func TestFromReader(t *testing.T) {
	assert := assert.New(t)

	s := views.FromReader(strings.NewReader("abc"))
	caps := s.Caps()
	assert.True(caps.Valid())
	assert.True(caps.SinglePass)
	assert.False(caps.Forward)

	assert.Equal([]byte("abc"), collect(t, s))
	assert.Empty(collect(t, s), "single-pass input is consumed")
}

func TestIota(t *testing.T) {
	assert := assert.New(t)

	s := views.Iota(10, 4)
	caps := s.Caps()
	assert.True(caps.RandomAccess)
	assert.True(caps.Sized)
	assert.False(caps.Common)
	assert.Equal([]int{10, 11, 12, 13}, collect(t, s))

	v, ok := views.At(s, 3)
	assert.True(ok)
	assert.Equal(13, v)

	assert.Empty(collect(t, views.Iota(0, -1)))
}

func TestRepeat(t *testing.T) {
	assert := assert.New(t)

	s := views.Repeat("x", 3)
	caps := s.Caps()
	assert.True(caps.Forward)
	assert.True(caps.Sized)
	assert.False(caps.RandomAccess)
	assert.Equal([]string{"x", "x", "x"}, collect(t, s))

	n, ok := views.Size(s)
	assert.True(ok)
	assert.Equal(3, n)
}

func TestValues(t *testing.T) {
	assert := assert.New(t)

	var got []int
	for v := range views.Values(views.FromSlice([]int{1, 2, 3})) {
		got = append(got, v)
	}
	assert.Equal([]int{1, 2, 3}, got)

	// early break leaves no residue on a multi-pass view
	for v := range views.Values(views.FromSlice([]int{1, 2, 3})) {
		if v == 2 {
			break
		}
	}
}

func TestSinglePass(t *testing.T) {
	assert := assert.New(t)

	sp := views.SinglePass(views.FromSlice([]int{1, 2, 3, 4}))
	caps := sp.Caps()
	assert.True(caps.Valid())
	assert.True(caps.SinglePass)
	assert.False(caps.Forward)
	assert.False(caps.Sized)
	assert.False(caps.Common)

	cur := sp.Cursor()
	assert.True(cur.Next())
	assert.Equal(1, cur.Value())

	// the shared consuming cursor picks up where the first left off
	assert.Equal([]int{2, 3, 4}, collect(t, sp))
	assert.Empty(collect(t, sp))
}
