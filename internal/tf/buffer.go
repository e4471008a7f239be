// File: internal/tf/buffer.go
package tf

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/openrover/btnav/api/schemas"
)

// ErrTransformUnavailable marks a lookup for a frame pair the buffer cannot
// serve yet. Callers treat it as transient and retry on a later tick.
var ErrTransformUnavailable = errors.New("transform unavailable")

// Lookuper is the transform-lookup collaborator boundary.
type Lookuper interface {
	// Lookup returns the transform from target to source. The error wraps
	// ErrTransformUnavailable when the frame pair is not yet known.
	Lookup(target, source string) (schemas.TransformStamped, error)
}

// Broadcaster is the write side of the transform tree.
type Broadcaster interface {
	Set(ts schemas.TransformStamped)
}

// Buffer is an in-process transform store keyed by (parent, child) frame
// pairs. It stands in for the external transform-tree service: detectors and
// mapping publish into it, nodes look frames up out of it.
type Buffer struct {
	mu     sync.RWMutex
	byPair map[string]schemas.TransformStamped
}

// NewBuffer returns an empty transform buffer.
func NewBuffer() *Buffer {
	return &Buffer{byPair: make(map[string]schemas.TransformStamped)}
}

func pairKey(parent, child string) string {
	return parent + "\x00" + child
}

// Set stores or refreshes the transform for its frame pair.
func (b *Buffer) Set(ts schemas.TransformStamped) {
	if ts.Stamp.IsZero() {
		ts.Stamp = time.Now()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.byPair[pairKey(ts.ParentFrame, ts.ChildFrame)] = ts
}

// Lookup returns the transform from target to source.
func (b *Buffer) Lookup(target, source string) (schemas.TransformStamped, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ts, ok := b.byPair[pairKey(target, source)]
	if !ok {
		return schemas.TransformStamped{}, fmt.Errorf(
			"could not transform %s to %s: %w", target, source, ErrTransformUnavailable)
	}
	return ts, nil
}
