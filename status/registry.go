package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Table holds one kind of metric keyed by Key
// Components cache the pointer from Get at init; the hot path never locks
type Table[T any] struct {
	mu   sync.RWMutex
	byID map[Key]*T
	keys []Key // sorted
}

func newTable[T any]() *Table[T] {
	return &Table[T]{byID: make(map[Key]*T)}
}

// Get returns the metric for k, allocating it on first use
func (t *Table[T]) Get(k Key) *T {
	t.mu.RLock()
	ptr, ok := t.byID[k]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.byID[k]; ok {
		return ptr
	}
	ptr = new(T)
	t.byID[k] = ptr
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= k })
	t.keys = append(t.keys, "")
	copy(t.keys[i+1:], t.keys[i:])
	t.keys[i] = k
	return ptr
}

// Len returns the number of registered metrics
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.keys)
}

// each visits metrics in key order
func (t *Table[T]) each(fn func(k Key, ptr *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, k := range t.keys {
		fn(k, t.byID[k])
	}
}

// Registry is the central metrics facade shared by the engine, audio and the HUD
type Registry struct {
	Bools  *Table[atomic.Bool]
	Ints   *Table[atomic.Int64]
	Floats *Table[AtomicFloat]
	Labels *Table[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  newTable[atomic.Bool](),
		Ints:   newTable[atomic.Int64](),
		Floats: newTable[AtomicFloat](),
		Labels: newTable[Label](),
	}
}

// TotalCount returns total metrics across all tables
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Labels.Len()
}

// Summary renders the registry as one line: labels, counters, gauges, then set flags
func (r *Registry) Summary() string {
	var parts []string
	r.Labels.each(func(k Key, v *Label) {
		if s := v.Short(); s != "" {
			parts = append(parts, k.Group()+"="+s)
		}
	})
	r.Ints.each(func(k Key, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k.Name(), v.Load()))
	})
	r.Floats.each(func(k Key, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k.Name(), v.Get()))
	})
	r.Bools.each(func(k Key, v *atomic.Bool) {
		if v.Load() {
			parts = append(parts, "+"+k.Group())
		}
	})
	return strings.Join(parts, " ")
}
