package store

import "github.com/iov-one/artmarket"

// Move references for all storage types into this package
// for shorter names everywhere

type Model = artmarket.Model
type ReadOnlyKVStore = artmarket.ReadOnlyKVStore
type KVStore = artmarket.KVStore
type SetDeleter = artmarket.SetDeleter
type Batch = artmarket.Batch
type Iterator = artmarket.Iterator
type CacheableKVStore = artmarket.CacheableKVStore
type KVCacheWrap = artmarket.KVCacheWrap
type CommitKVStore = artmarket.CommitKVStore
type CommitID = artmarket.CommitID
