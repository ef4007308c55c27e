package memo

// Store holds memoized results. Implementations need not be safe for
// concurrent use; Synchronized serializes access to them.
type Store[K comparable, V any] interface {
	Load(key K) (V, bool)
	Store(key K, value V)
}

// MapStore is the default unbounded store.
type MapStore[K comparable, V any] struct {
	entries map[K]V
}

func NewMapStore[K comparable, V any]() *MapStore[K, V] {
	return &MapStore[K, V]{entries: map[K]V{}}
}

func (s *MapStore[K, V]) Load(key K) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

func (s *MapStore[K, V]) Store(key K, value V) {
	s.entries[key] = value
}

func (s *MapStore[K, V]) Len() int {
	return len(s.entries)
}

// RotatingStore keeps two generations of at most maxSize entries each.
// When the head generation is full, the older one is cleared and becomes the
// head, so at most 2*maxSize entries are retained.
type RotatingStore[K comparable, V any] struct {
	generations [2]map[K]V
	headIdx     int
	size        uint32
	maxSize     uint32

	onRotate func()
}

func NewRotatingStore[K comparable, V any](maxSize uint32) *RotatingStore[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &RotatingStore[K, V]{
		generations: [2]map[K]V{{}, {}},
		maxSize:     maxSize,
	}
}

func (s *RotatingStore[K, V]) Load(key K) (V, bool) {
	if v, ok := s.generations[s.headIdx][key]; ok {
		return v, true
	}
	v, ok := s.generations[1-s.headIdx][key]
	return v, ok
}

func (s *RotatingStore[K, V]) Store(key K, value V) {
	head := s.generations[s.headIdx]
	if _, ok := head[key]; ok {
		head[key] = value
		return
	}
	if s.size == s.maxSize {
		s.headIdx = 1 - s.headIdx
		clear(s.generations[s.headIdx])
		s.size = 0
		if s.onRotate != nil {
			s.onRotate()
		}
	}
	s.generations[s.headIdx][key] = value
	s.size++
}

func (s *RotatingStore[K, V]) Len() int {
	return len(s.generations[0]) + len(s.generations[1])
}
