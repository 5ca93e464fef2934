// Package cache implements the local mirror of the last-known entity sets:
// an in-memory store written through after every successful fetch or
// mutation, plus a best-effort persisted snapshot used as the read fallback
// when the upstream is unreachable.
package cache

import (
	"sync"
)

// Identificable is satisfied by every model entity (backend-assigned id).
type Identificable interface {
	Clave() int64
}

// Mirror holds the last-fetched entities of one type. It is an explicit,
// injectable store (no module-level singletons): lifetime and test-reset are
// owned by whoever constructs it. Insertion order is preserved so List
// returns entities in the order they were first seen, matching the array
// semantics the UI depends on.
//
// Lifecycle: EMPTY → POPULATED on the first successful fetch or mutation,
// then POPULATED forever — it never returns to EMPTY except on process
// restart or an explicit Reset.
type Mirror[T Identificable] struct {
	mu       sync.RWMutex
	indice   map[int64]int
	items    []T
	capacity int
}

// NewMirror creates an unbounded mirror.
func NewMirror[T Identificable]() *Mirror[T] {
	return &Mirror[T]{indice: make(map[int64]int)}
}

// NewMirrorConCapacidad creates a mirror that evicts the oldest-inserted
// entry once capacity is exceeded. Intended for long-running sessions where
// unbounded growth matters; capacity <= 0 means unbounded.
func NewMirrorConCapacidad[T Identificable](capacity int) *Mirror[T] {
	m := NewMirror[T]()
	m.capacity = capacity
	return m
}

// Get returns the entity and true, or the zero value and false. Absence is
// a valid, checked result, not a failure.
func (m *Mirror[T]) Get(id int64) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i, ok := m.indice[id]; ok {
		return m.items[i], true
	}
	var zero T
	return zero, false
}

// Upsert replaces by id if present, appends otherwise. Must be called after
// every successful create/update response.
func (m *Mirror[T]) Upsert(e T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertLocked(e)
}

// UpsertTodos write-throughs a whole fetched page.
func (m *Mirror[T]) UpsertTodos(items []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range items {
		m.upsertLocked(e)
	}
}

func (m *Mirror[T]) upsertLocked(e T) {
	id := e.Clave()
	if i, ok := m.indice[id]; ok {
		m.items[i] = e
		return
	}
	if m.capacity > 0 && len(m.items) >= m.capacity {
		m.evictOldestLocked()
	}
	m.indice[id] = len(m.items)
	m.items = append(m.items, e)
}

func (m *Mirror[T]) evictOldestLocked() {
	oldest := m.items[0]
	delete(m.indice, oldest.Clave())
	m.items = m.items[1:]
	for id, i := range m.indice {
		m.indice[id] = i - 1
	}
}

// Remove filters out by id. Called after every successful delete.
func (m *Mirror[T]) Remove(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.indice[id]
	if !ok {
		return
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	delete(m.indice, id)
	for j := i; j < len(m.items); j++ {
		m.indice[m.items[j].Clave()] = j
	}
}

// List returns a copy of the mirrored entities in insertion order.
func (m *Mirror[T]) List() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Mirror[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Reset empties the mirror. Test hook — production code never calls it.
func (m *Mirror[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indice = make(map[int64]int)
	m.items = nil
}
