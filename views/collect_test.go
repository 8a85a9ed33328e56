package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqview/lists"
	"seqview/views"
)

func TestCollect(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		assert := assert.New(t)

		v := apply(t, views.Take[int](3), views.Iota(1, 10))
		got, err := views.Collect(v)
		assert.NoError(err)
		assert.Equal([]int{1, 2, 3}, got)
	})

	t.Run("StrictViolationReturnsPartial", func(t *testing.T) {
		assert := assert.New(t)

		v := apply(t, views.TakeLineStrict[byte](), views.FromString("foo"))
		got, err := views.Collect(v)
		assert.ErrorIs(err, views.ErrUnexpectedEndOfInput)
		assert.Equal([]byte("foo"), got)
	})
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	// materializing a finite view and viewing the container again yields
	// an element-for-element identical sequence
	v := apply(t, views.TakeLine[byte](), views.FromString("foo\nbar"))
	first, err := views.Collect(v)
	require.NoError(t, err)

	again, err := views.Collect(views.FromSlice(first))
	require.NoError(t, err)
	assert.Equal(first, again)
}

func TestInto(t *testing.T) {
	t.Run("ArrayList", func(t *testing.T) {
		assert := assert.New(t)

		al := lists.NewArrayList[byte](0)
		v := apply(t, views.Take[byte](3), views.FromString("foobar"))
		require.NoError(t, views.Into[byte](v, al))
		assert.Equal([]byte("foo"), al.ToSlice())
	})

	t.Run("LinkedList", func(t *testing.T) {
		assert := assert.New(t)

		ll := lists.NewLinkedList[byte]()
		v := apply(t, views.Drop[byte](3), views.FromString("foobar"))
		require.NoError(t, views.Into[byte](v, ll))
		assert.Equal([]byte("bar"), ll.ToSlice())
	})

	t.Run("ContainerRoundTrip", func(t *testing.T) {
		assert := assert.New(t)

		ll := lists.NewLinkedList[int]()
		require.NoError(t, views.Into[int](views.Iota(0, 5), ll))

		got, err := views.Collect(ll.View())
		assert.NoError(err)
		assert.Equal([]int{0, 1, 2, 3, 4}, got)
	})

	t.Run("StrictViolationPropagates", func(t *testing.T) {
		assert := assert.New(t)

		al := lists.NewArrayList[byte](0)
		sp := views.SinglePass(views.FromString("ab"))
		v := apply(t, views.TakeExactlyStrict[byte](3), sp)
		assert.ErrorIs(views.Into[byte](v, al), views.ErrUnexpectedEndOfInput)
	})
}
