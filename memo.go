package cuuid

import "sync"

// Memoized wraps a UUID with a cached serialised form, computed at most
// once no matter how many goroutines call Serialise concurrently. UUID
// itself stays a plain, comparable value; Memoized is for callers who
// serialise the same value repeatedly (e.g. re-encoding a key on every
// cache hit) and want to skip the recomputation.
type Memoized struct {
	UUID
	once sync.Once
	data []byte
}

// NewMemoized wraps u for repeated serialisation.
func NewMemoized(u UUID) *Memoized {
	return &Memoized{UUID: u}
}

// Serialise returns u's wire record, computing it once and reusing the
// result on every subsequent call.
func (m *Memoized) Serialise() []byte {
	m.once.Do(func() {
		m.data = m.UUID.Serialise()
	})
	return m.data
}
