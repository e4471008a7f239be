package tf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrover/btnav/api/schemas"
)

func TestBuffer_SetAndLookup(t *testing.T) {
	buffer := NewBuffer()
	ts := schemas.TransformStamped{
		ParentFrame: "map",
		ChildFrame:  "shelf_3",
		Stamp:       time.Now(),
		Transform: schemas.Transform{
			Translation: schemas.Vec3{X: 4.0, Y: -2.0},
			Rotation:    schemas.IdentityQuaternion(),
		},
	}
	buffer.Set(ts)

	got, err := buffer.Lookup("map", "shelf_3")
	require.NoError(t, err)
	assert.Equal(t, ts, got)
}

func TestBuffer_LookupUnknownPair(t *testing.T) {
	buffer := NewBuffer()

	_, err := buffer.Lookup("map", "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransformUnavailable)
	assert.Contains(t, err.Error(), "could not transform map to ghost")
}

func TestBuffer_LookupIsDirectional(t *testing.T) {
	buffer := NewBuffer()
	buffer.Set(schemas.TransformStamped{ParentFrame: "map", ChildFrame: "dock"})

	_, err := buffer.Lookup("dock", "map")
	assert.ErrorIs(t, err, ErrTransformUnavailable, "the buffer does not invert transforms")
}

func TestBuffer_SetRefreshesExistingPair(t *testing.T) {
	buffer := NewBuffer()
	buffer.Set(schemas.TransformStamped{
		ParentFrame: "map",
		ChildFrame:  "cart",
		Transform:   schemas.Transform{Translation: schemas.Vec3{X: 1}},
	})
	buffer.Set(schemas.TransformStamped{
		ParentFrame: "map",
		ChildFrame:  "cart",
		Transform:   schemas.Transform{Translation: schemas.Vec3{X: 9}},
	})

	got, err := buffer.Lookup("map", "cart")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Transform.Translation.X)
}

func TestBuffer_SetStampsUnstampedTransforms(t *testing.T) {
	buffer := NewBuffer()
	buffer.Set(schemas.TransformStamped{ParentFrame: "map", ChildFrame: "cart"})

	got, err := buffer.Lookup("map", "cart")
	require.NoError(t, err)
	assert.False(t, got.Stamp.IsZero())
}
