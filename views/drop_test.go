package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seqview/views"
)

func TestDrop(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		assert := assert.New(t)

		for k, want := range map[int]string{0: "foobar", 3: "bar", 6: "", 9: ""} {
			v := apply(t, views.Drop[byte](k), views.FromString("foobar"))
			got, err := views.String(v)
			assert.NoError(err)
			assert.Equal(want, got, "k=%d", k)
		}
	})

	t.Run("CapsFullyPreserved", func(t *testing.T) {
		assert := assert.New(t)

		v := apply(t, views.Drop[byte](2), linked('f', 'o', 'o', 'b', 'a', 'r'))
		caps := v.Caps()
		assert.True(caps.Valid())
		assert.True(caps.Bidirectional)
		assert.True(caps.Sized)
		assert.True(caps.Common, "drop keeps common")

		n, ok := views.Size(v)
		assert.True(ok)
		assert.Equal(4, n)
	})

	t.Run("SizeArithmetic", func(t *testing.T) {
		assert := assert.New(t)

		// floored at zero when dropping more than is available
		v := apply(t, views.Drop[int](10), views.Iota(0, 4))
		n, ok := views.Size(v)
		assert.True(ok)
		assert.Equal(0, n)
	})

	t.Run("RandomAccessPassthrough", func(t *testing.T) {
		assert := assert.New(t)

		v := apply(t, views.Drop[int](2), views.Iota(0, 6))
		assert.True(v.Caps().RandomAccess)

		got, ok := views.At(v, 0)
		assert.True(ok)
		assert.Equal(2, got)
		got, ok = views.At(v, 3)
		assert.True(ok)
		assert.Equal(5, got)
	})

	t.Run("SlicePath", func(t *testing.T) {
		assert := assert.New(t)

		v := apply(t, views.Drop[byte](3), views.FromString("foobar"))
		assert.True(v.Caps().Common)
		got, err := views.String(v)
		assert.NoError(err)
		assert.Equal("bar", got)
	})

	t.Run("SinglePassConsumes", func(t *testing.T) {
		assert := assert.New(t)

		sp := views.SinglePass(views.FromString("foobar"))
		v := apply(t, views.Drop[byte](3), sp)
		got, err := views.String(v)
		assert.NoError(err)
		assert.Equal("bar", got)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		assert := assert.New(t)

		v := apply(t, views.Drop[byte](-2), views.FromString("foo"))
		got, err := views.String(v)
		assert.NoError(err)
		assert.Equal("foo", got)
	})
}
