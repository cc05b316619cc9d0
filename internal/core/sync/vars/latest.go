package vars

import (
	"sync/atomic"
)

// Latest is a single-slot cell holding the newest value written to it.
// Writers never block and never queue: every Set overwrites the previous value.
// Readers always see a complete value, never a torn one.
type Latest[T any] struct {
	value   atomic.Pointer[T]
	version atomic.Uint64
	dirty   atomic.Bool
}

// NewLatest creates a cell holding initialValue at version 1.
func NewLatest[T any](initialValue T) *Latest[T] {
	l := &Latest[T]{}
	l.value.Store(&initialValue)
	l.version.Store(1)
	return l
}

// Get returns the current value.
func (l *Latest[T]) Get() T {
	ptr := l.value.Load()
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// Set stores value, replacing whatever was there.
func (l *Latest[T]) Set(value T) {
	l.value.Store(&value)
	l.version.Add(1)
	l.dirty.Store(true)
}

// Version increases by one on every write.
func (l *Latest[T]) Version() uint64 {
	return l.version.Load()
}

// TakeIfDirty returns the value and true when it changed since the last call,
// clearing the dirty flag in the same step.
func (l *Latest[T]) TakeIfDirty() (T, bool) {
	if !l.dirty.CompareAndSwap(true, false) {
		var zero T
		return zero, false
	}
	return l.Get(), true
}
