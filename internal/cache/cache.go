package cache

import (
	"time"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Del(key string) bool
	Clear()
}

var _ Cache = (*FreeCache)(nil)

// FreeCache is a Cache on top of freecache, which is sharded and safe for concurrent use.
type FreeCache struct {
	mainCache *freecache.Cache
}

// NewFreeCache makes a cache of the given size; freecache caps it at 512KB minimum.
func NewFreeCache(sizeMB int) *FreeCache {
	return &FreeCache{
		mainCache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (fc *FreeCache) Get(key string) ([]byte, bool) {
	val, err := fc.mainCache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores value with the given ttl, rounded down to seconds. Zero or less means no expiry.
func (fc *FreeCache) Set(key string, value []byte, ttl time.Duration) error {
	expireSeconds := 0
	if ttl > 0 {
		expireSeconds = int(ttl / time.Second)
		if expireSeconds == 0 {
			expireSeconds = 1
		}
	}
	return fc.mainCache.Set([]byte(key), value, expireSeconds)
}

func (fc *FreeCache) Del(key string) bool {
	return fc.mainCache.Del([]byte(key))
}

func (fc *FreeCache) Clear() {
	fc.mainCache.Clear()
}
