package memo

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

// DefaultHighWater is the number of cached entries at which a memoizer will
// emit its one-time growth diagnostic.
const DefaultHighWater = 1000

// Serializer computes the cache key for an input value.
type Serializer[In any] func(In) (string, error)

// JSONKey is the default serializer. It serializes structurally, with map keys
// sorted. It fails for cyclic values and, with ErrHiddenField, for values of
// struct types with unexported fields (see CheckJSONKey). Errors are wrapped.
func JSONKey[In any](in In) (string, error) {
	if err := CheckJSONKey(reflect.TypeOf(in)); err != nil {
		return "", err
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("memo: cannot serialize cache key: %w", err)
	}
	return string(b), nil
}

// Stats is a snapshot of a memoizer's counters.
type Stats struct {
	Size   int    // number of distinct cached entries
	Hits   uint64 // calls answered from the cache
	Misses uint64 // calls which invoked the wrapped function
}

// Func is a memoized version of a function from In to Out.
//
// Func is safe for concurrent use. On a cache miss the wrapped function runs
// with the memoizer locked, so it is invoked exactly once per key even under
// concurrent callers. The wrapped function must therefore not call back into
// the same memoizer.
type Func[In, Out any] struct {
	mx        sync.Mutex
	fn        func(In) (Out, error)
	serialize Serializer[In]
	cache     map[string]Out
	highWater int
	warned    bool
	onWarning func(int)
	hits      uint64
	misses    uint64
}

// Option configures a memoizer.
type Option[In any] func(*config[In])

type config[In any] struct {
	serialize Serializer[In]
	highWater int
	onWarning func(int)
}

// WithSerializer replaces the default JSON key serializer.
func WithSerializer[In any](s Serializer[In]) Option[In] {
	return func(c *config[In]) {
		if s != nil {
			c.serialize = s
		}
	}
}

// WithHighWater sets the cache size at which the growth diagnostic fires.
// A value of 0 or less disables the diagnostic.
func WithHighWater[In any](n int) Option[In] {
	return func(c *config[In]) {
		c.highWater = n
	}
}

// WithWarning installs a hook which is called once, with the current cache
// size, when the high-water mark is first reached. The hook is called in
// addition to tracing the diagnostic.
func WithWarning[In any](hook func(size int)) Option[In] {
	return func(c *config[In]) {
		c.onWarning = hook
	}
}

// New wraps fn into a memoizer.
func New[In, Out any](fn func(In) (Out, error), opts ...Option[In]) *Func[In, Out] {
	c := config[In]{
		serialize: JSONKey[In],
		highWater: DefaultHighWater,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &Func[In, Out]{
		fn:        fn,
		serialize: c.serialize,
		cache:     make(map[string]Out),
		highWater: c.highWater,
		onWarning: c.onWarning,
	}
}

// Call returns the result for in, computing it if no result for an input
// with the same serialization has been stored yet.
//
// Errors of the key serializer and of the wrapped function are returned as
// they are; note that JSONKey wraps the errors of the JSON encoder. Nothing
// is cached for a failed computation.
func (m *Func[In, Out]) Call(in In) (Out, error) {
	var zero Out
	key, err := m.serialize(in)
	if err != nil {
		return zero, err
	}
	m.mx.Lock()
	defer m.mx.Unlock()
	if out, ok := m.cache[key]; ok {
		m.hits++
		return out, nil
	}
	m.misses++
	tracer().Debugf("memo: cache miss for key %s", key)
	out, err := m.fn(in)
	if err != nil {
		return zero, err
	}
	m.cache[key] = out
	m.checkHighWater()
	return out, nil
}

// checkHighWater emits the growth diagnostic once. Must be called with the
// mutex held.
func (m *Func[In, Out]) checkHighWater() {
	if m.warned || m.highWater <= 0 || len(m.cache) < m.highWater {
		return
	}
	m.warned = true
	size := len(m.cache)
	tracer().Infof("memo: cache reached %d entries and is never evicted; "+
		"are changing values used as keys?", size)
	if m.onWarning != nil {
		m.onWarning(size)
	}
}

// Len returns the number of cached entries.
func (m *Func[In, Out]) Len() int {
	m.mx.Lock()
	defer m.mx.Unlock()
	return len(m.cache)
}

// Stats returns a snapshot of the memoizer's counters.
func (m *Func[In, Out]) Stats() Stats {
	m.mx.Lock()
	defer m.mx.Unlock()
	return Stats{
		Size:   len(m.cache),
		Hits:   m.hits,
		Misses: m.misses,
	}
}
