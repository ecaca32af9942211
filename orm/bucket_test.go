package orm

import (
	"testing"

	"github.com/iov-one/artmarket/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketSaveGet(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("count", NewCounterObj(nil, 0).Clone())

	// empty bucket returns nothing
	obj, err := bucket.Get(db, []byte("planet"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	// save and load give us the same data
	obj = NewCounterObj([]byte("planet"), 44)
	require.NoError(t, bucket.Save(db, obj))
	loaded, err := bucket.Get(db, []byte("planet"))
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []byte("planet"), loaded.Key())
	assert.Equal(t, int64(44), loaded.Value().(*Counter).Count)

	// saving without a key fails
	noKey := NewCounterObj(nil, 7)
	assert.Error(t, bucket.Save(db, noKey))

	// deleted values are gone
	require.NoError(t, bucket.Delete(db, []byte("planet")))
	obj, err = bucket.Get(db, []byte("planet"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("some", NewCounterObj(nil, 0).Clone())
	two := NewBucket("somex", NewCounterObj(nil, 0).Clone())

	require.NoError(t, one.Save(db, NewCounterObj([]byte("key"), 1)))
	require.NoError(t, two.Save(db, NewCounterObj([]byte("key"), 2)))

	o, err := one.Get(db, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.Value().(*Counter).Count)
	o, err = two.Get(db, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), o.Value().(*Counter).Count)

	// each bucket only iterates its own keys
	objs, err := one.GetAll(db)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, int64(1), objs[0].Value().(*Counter).Count)
}

func TestBucketGetAllOrdered(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("count", NewCounterObj(nil, 0).Clone())

	keys := [][]byte{[]byte("c"), []byte("a"), []byte("b")}
	for i, k := range keys {
		require.NoError(t, bucket.Save(db, NewCounterObj(k, int64(i))))
	}

	objs, err := bucket.GetAll(db)
	require.NoError(t, err)
	require.Len(t, objs, 3)
	assert.Equal(t, []byte("a"), objs[0].Key())
	assert.Equal(t, []byte("b"), objs[1].Key())
	assert.Equal(t, []byte("c"), objs[2].Key())
}

func TestBucketBadNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBucket("l33t", NewCounterObj(nil, 0).Clone())
	})
}
