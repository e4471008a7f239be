// File: internal/bt/blackboard.go
package bt

import "sync"

// Blackboard is the shared port store nodes read their inputs from and write
// their outputs to. The host engine owns the instance; nodes only see it
// through their tick. Access is guarded so an external writer (e.g. a mission
// runner swapping leg parameters between ticks) cannot race a ticking node.
type Blackboard struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewBlackboard returns an empty blackboard.
func NewBlackboard() *Blackboard {
	return &Blackboard{entries: make(map[string]any)}
}

// Set stores a value under a port key, replacing any previous value.
func (b *Blackboard) Set(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
}

// Get returns the raw value for a key.
func (b *Blackboard) Get(key string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.entries[key]
	return v, ok
}

// GetString returns the string stored under key, or "" when the port is
// unset or holds a different type.
func (b *Blackboard) GetString(key string) (string, bool) {
	v, ok := b.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetFloat64 returns the float stored under key. Integer values are widened
// so mission files may write whole numbers for coordinates.
func (b *Blackboard) GetFloat64(key string) (float64, bool) {
	v, ok := b.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// GetBool returns the bool stored under key, or false when unset.
func (b *Blackboard) GetBool(key string) (bool, bool) {
	v, ok := b.Get(key)
	if !ok {
		return false, false
	}
	f, ok := v.(bool)
	return f, ok
}

// GetInt returns the int stored under key.
func (b *Blackboard) GetInt(key string) (int, bool) {
	v, ok := b.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}
