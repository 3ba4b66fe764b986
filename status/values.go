package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as its bit pattern; the zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// StoreMax raises the stored value to val if val is larger, returns the resulting value
func (f *AtomicFloat) StoreMax(val float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if val <= cur {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}

// LabelLen bounds a Label; a canonical UUID fits exactly
const LabelLen = 36

// LabelShortLen is how much of a Label the HUD shows
const LabelShortLen = 8

// Label is an identifier published by the simulation, such as the session id
type Label struct {
	v atomic.Value // string
}

// Set publishes val cut to LabelLen
func (l *Label) Set(val string) {
	if len(val) > LabelLen {
		val = val[:LabelLen]
	}
	l.v.Store(val)
}

// Get returns the published value, "" before the first Set
func (l *Label) Get() string {
	s, _ := l.v.Load().(string)
	return s
}

// Short returns the first LabelShortLen bytes
func (l *Label) Short() string {
	s := l.Get()
	if len(s) > LabelShortLen {
		return s[:LabelShortLen]
	}
	return s
}
