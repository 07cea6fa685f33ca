package service

import (
	"testing"

	"github.com/mmcdole/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist_ToggleTwiceRestoresState(t *testing.T) {
	kv := newMemStore(t)
	require.NoError(t, kv.Set(domain.KeyWishlist, "[7]"))
	w := NewWishlistService(kv, nil)

	before, _ := kv.Get(domain.KeyWishlist)

	member, err := w.Toggle(3)
	require.NoError(t, err)
	assert.True(t, member)
	assert.True(t, w.IsMember(3))

	stored, _ := kv.Get(domain.KeyWishlist)
	assert.Equal(t, "[7,3]", stored)

	member, err = w.Toggle(3)
	require.NoError(t, err)
	assert.False(t, member)
	assert.False(t, w.IsMember(3))

	after, _ := kv.Get(domain.KeyWishlist)
	assert.Equal(t, before, after)
}

func TestWishlist_PersistsAcrossInstances(t *testing.T) {
	kv := newMemStore(t)

	w := NewWishlistService(kv, nil)
	_, err := w.Toggle(84)
	require.NoError(t, err)
	_, err = w.Toggle(1342)
	require.NoError(t, err)

	reloaded := NewWishlistService(kv, nil)
	assert.Equal(t, []int{84, 1342}, reloaded.IDs())
}

func TestWishlist_RemoveEmptiesToJSONArray(t *testing.T) {
	kv := newMemStore(t)
	w := NewWishlistService(kv, nil)

	_, err := w.Toggle(5)
	require.NoError(t, err)
	require.NoError(t, w.Remove(5))

	stored, ok := kv.Get(domain.KeyWishlist)
	assert.True(t, ok)
	assert.Equal(t, "[]", stored)
	assert.Equal(t, 0, w.Len())
}

func TestWishlist_CorruptValueFallsBackToEmpty(t *testing.T) {
	kv := newMemStore(t)
	require.NoError(t, kv.Set(domain.KeyWishlist, "not json"))

	w := NewWishlistService(kv, nil)
	assert.Empty(t, w.IDs())

	member, err := w.Toggle(1)
	require.NoError(t, err)
	assert.True(t, member)
}

func TestWishlist_DropsStoredDuplicates(t *testing.T) {
	kv := newMemStore(t)
	require.NoError(t, kv.Set(domain.KeyWishlist, "[1,2,1,3,2]"))

	w := NewWishlistService(kv, nil)
	assert.Equal(t, []int{1, 2, 3}, w.IDs())
}
