package memo

import (
	"sync"

	"go.uber.org/zap"
)

// table is the single memoization core every arity reduces to: one key type,
// one store, and a wrapped function that may fail.
type table[K comparable, O any] struct {
	name   string
	logger *zap.Logger
	store  Store[K, O]

	// set only for Synchronized tables
	mu       *sync.Mutex
	inflight map[K]chan struct{}
}

func newTable[K comparable, O any](store Store[K, O], cfg config) *table[K, O] {
	if store == nil {
		store = defaultStore[K, O](cfg)
	}
	t := &table[K, O]{
		name:   cfg.name,
		logger: cfg.logger,
		store:  store,
	}
	if cfg.synchronized {
		t.mu = &sync.Mutex{}
		t.inflight = map[K]chan struct{}{}
	}
	return t
}

func defaultStore[K comparable, O any](cfg config) Store[K, O] {
	if cfg.maxEntries == 0 {
		return NewMapStore[K, O]()
	}
	rs := NewRotatingStore[K, O](cfg.maxEntries)
	rs.onRotate = func() {
		if ce := cfg.logger.Check(zap.DebugLevel, "memo generation rotated"); ce != nil {
			ce.Write(zap.String("memo", cfg.name), zap.Uint32("max_entries", cfg.maxEntries))
		}
	}
	return rs
}

func (t *table[K, O]) call(key K, f func(K) (O, error)) (O, error) {
	if t.mu != nil {
		return t.callSynchronized(key, f)
	}
	if v, ok := t.store.Load(key); ok {
		t.debug("memo hit", key, nil)
		return v, nil
	}
	t.debug("memo miss", key, nil)
	v, err := f(key)
	if err != nil {
		t.debug("memo result not cached", key, err)
		return v, err
	}
	t.store.Store(key, v)
	return v, nil
}

func (t *table[K, O]) callSynchronized(key K, f func(K) (O, error)) (O, error) {
	for {
		t.mu.Lock()
		if v, ok := t.store.Load(key); ok {
			t.mu.Unlock()
			t.debug("memo hit", key, nil)
			return v, nil
		}
		done, busy := t.inflight[key]
		if !busy {
			done = make(chan struct{})
			t.inflight[key] = done
			t.mu.Unlock()
			t.debug("memo miss", key, nil)
			return t.lead(key, done, f)
		}
		t.mu.Unlock()
		// The leader either stored a result or failed; look again either way.
		<-done
	}
}

func (t *table[K, O]) lead(key K, done chan struct{}, f func(K) (O, error)) (O, error) {
	defer func() {
		t.mu.Lock()
		delete(t.inflight, key)
		t.mu.Unlock()
		close(done)
	}()
	v, err := f(key)
	if err != nil {
		t.debug("memo result not cached", key, err)
		return v, err
	}
	t.mu.Lock()
	t.store.Store(key, v)
	t.mu.Unlock()
	return v, nil
}

func (t *table[K, O]) debug(msg string, key K, err error) {
	ce := t.logger.Check(zap.DebugLevel, msg)
	if ce == nil {
		return
	}
	fields := []zap.Field{zap.String("memo", t.name), zap.Any("key", key)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	ce.Write(fields...)
}
