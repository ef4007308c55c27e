package memo

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

type ristrettoKey interface {
	ristretto.Key
	comparable
}

// RistrettoStore is a bounded store with TinyLFU admission. Each entry costs
// one unit, so maxEntries is the number of results it retains at most.
type RistrettoStore[K ristrettoKey, V any] struct {
	cache *ristretto.Cache[K, V]
}

func NewRistrettoStore[K ristrettoKey, V any](maxEntries int64) (*RistrettoStore[K, V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("ristretto store: maxEntries should be greater than 0, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ristretto store: %w", err)
	}
	return &RistrettoStore[K, V]{cache: cache}, nil
}

func (r *RistrettoStore[K, V]) Load(key K) (V, bool) {
	return r.cache.Get(key)
}

// Store waits for the write to be applied so that an immediate Load sees it,
// unless ristretto dropped or rejected it.
func (r *RistrettoStore[K, V]) Store(key K, value V) {
	if r.cache.Set(key, value, 1) {
		r.cache.Wait()
	}
}

// Close stops the cache's background goroutines.
func (r *RistrettoStore[K, V]) Close() {
	r.cache.Close()
}
