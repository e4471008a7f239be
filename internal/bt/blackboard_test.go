package bt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlackboard_SetAndGet(t *testing.T) {
	bb := NewBlackboard()
	bb.Set("tf_frame", "shelf_3")
	bb.Set("x", 1.5)
	bb.Set("will_finish", true)
	bb.Set("direction", -1)

	s, ok := bb.GetString("tf_frame")
	assert.True(t, ok)
	assert.Equal(t, "shelf_3", s)

	f, ok := bb.GetFloat64("x")
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	b, ok := bb.GetBool("will_finish")
	assert.True(t, ok)
	assert.True(t, b)

	n, ok := bb.GetInt("direction")
	assert.True(t, ok)
	assert.Equal(t, -1, n)
}

func TestBlackboard_GetFloat64WidensInts(t *testing.T) {
	bb := NewBlackboard()
	bb.Set("y", 4)

	f, ok := bb.GetFloat64("y")
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)
}

func TestBlackboard_MissingAndMistypedPorts(t *testing.T) {
	bb := NewBlackboard()
	bb.Set("x", "not a number")

	_, ok := bb.GetFloat64("x")
	assert.False(t, ok)
	_, ok = bb.GetString("absent")
	assert.False(t, ok)
	_, ok = bb.GetBool("absent")
	assert.False(t, ok)
	_, ok = bb.GetInt("absent")
	assert.False(t, ok)
}

func TestBlackboard_SetReplaces(t *testing.T) {
	bb := NewBlackboard()
	bb.Set("x", 1.0)
	bb.Set("x", 2.0)

	f, _ := bb.GetFloat64("x")
	assert.Equal(t, 2.0, f)
}

func TestBlackboard_ConcurrentAccess(t *testing.T) {
	bb := NewBlackboard()
	var wg sync.WaitGroup

	// A mission runner writing legs while a node reads them must not race.
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			bb.Set("x", float64(v))
		}(i)
		go func() {
			defer wg.Done()
			bb.GetFloat64("x")
		}()
	}
	wg.Wait()
}
