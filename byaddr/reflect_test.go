package byaddr

import (
	"testing"
	"unsafe"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityOf(t *testing.T) {
	t.Run("pointer", func(t *testing.T) {
		a := &account{}
		id, err := IdentityOf(a)
		require.NoError(t, err)
		assert.Equal(t, Of(a).Identity(), id)
	})

	t.Run("typed nil pointer", func(t *testing.T) {
		var p *account
		id, err := IdentityOf(p)
		require.NoError(t, err)
		assert.True(t, id.IsZero())
	})

	t.Run("slice records extent", func(t *testing.T) {
		s := []byte{1, 2, 3}
		id, err := IdentityOf(s)
		require.NoError(t, err)
		assert.Equal(t, OfSlice(s).Identity(), id)
		assert.Equal(t, 3, id.Len())
	})

	t.Run("string records extent", func(t *testing.T) {
		s := "identity"
		id, err := IdentityOf(s)
		require.NoError(t, err)
		assert.Equal(t, OfString(s).Identity(), id)
		assert.Equal(t, len(s), id.Len())
	})

	t.Run("map", func(t *testing.T) {
		m := map[string]int{"a": 1}
		id, err := IdentityOf(m)
		require.NoError(t, err)
		assert.Equal(t, OfMap(m).Identity(), id)
	})

	t.Run("chan", func(t *testing.T) {
		ch := make(chan int)
		id, err := IdentityOf(ch)
		require.NoError(t, err)
		assert.Equal(t, OfChan(ch).Identity(), id)
	})

	t.Run("func uses the value, not the code", func(t *testing.T) {
		counter := func(start int) func() int {
			n := start
			return func() int { n++; return n }
		}
		c1, c2 := counter(1), counter(1)

		id1, err := IdentityOf(c1)
		require.NoError(t, err)
		id2, err := IdentityOf(c2)
		require.NoError(t, err)
		assert.False(t, id1.Equal(id2))

		again, err := IdentityOf(c1)
		require.NoError(t, err)
		assert.True(t, id1.Equal(again))
		assert.Equal(t, OfFunc(c1).Identity(), id1)
	})

	t.Run("unsafe pointer", func(t *testing.T) {
		a := &account{}
		id, err := IdentityOf(unsafe.Pointer(a))
		require.NoError(t, err)
		assert.Equal(t, Of(a).Identity(), id)
	})

	t.Run("untyped nil is rejected", func(t *testing.T) {
		_, err := IdentityOf(nil)
		require.Error(t, err)
		assert.Equal(t, ErrNotPointerLike, errors.Cause(err))
	})

	t.Run("int is rejected", func(t *testing.T) {
		_, err := IdentityOf(42)
		require.Error(t, err)
		assert.Equal(t, ErrNotPointerLike, errors.Cause(err))
		assert.Contains(t, err.Error(), "kind int")
	})

	t.Run("struct is rejected", func(t *testing.T) {
		_, err := IdentityOf(account{})
		require.Error(t, err)
		assert.Equal(t, ErrNotPointerLike, errors.Cause(err))
	})
}

func TestIdentitiesOf(t *testing.T) {
	t.Run("all pointer-like", func(t *testing.T) {
		a := &account{}
		s := []int{1}
		str := "x"
		ids, err := IdentitiesOf(a, s, str)
		require.NoError(t, err)
		require.Len(t, ids, 3)
		assert.Equal(t, Of(a).Identity(), ids[0])
		assert.Equal(t, OfSlice(s).Identity(), ids[1])
		assert.Equal(t, OfString(str).Identity(), ids[2])
	})

	t.Run("keeps positions and reports every rejection", func(t *testing.T) {
		a := &account{}
		ids, err := IdentitiesOf(a, 42, []int{1}, true)
		require.Error(t, err)
		require.Len(t, ids, 4)
		assert.False(t, ids[0].IsZero())
		assert.True(t, ids[1].IsZero())
		assert.False(t, ids[2].IsZero())
		assert.True(t, ids[3].IsZero())

		merr, ok := err.(*multierror.Error)
		require.True(t, ok)
		require.Len(t, merr.Errors, 2)
		assert.Contains(t, merr.Errors[0].Error(), "value 1")
		assert.Contains(t, merr.Errors[1].Error(), "value 3")
		assert.Equal(t, ErrNotPointerLike, errors.Cause(merr.Errors[0]))
	})

	t.Run("empty input", func(t *testing.T) {
		ids, err := IdentitiesOf()
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}
