package schemas

import "time"

// -- Geometry Schemas --

// GlobalFrame is the fixed world frame all navigation goals are expressed in.
const GlobalFrame = "map"

// Vec3 is a point or translation in meters.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is an orientation in (x, y, z, w) form.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IdentityQuaternion returns the no-rotation orientation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1.0}
}

// Pose combines a position with an orientation.
type Pose struct {
	Position    Vec3       `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// PoseStamped is a pose tagged with the frame it is expressed in.
type PoseStamped struct {
	FrameID string    `json:"frame_id"`
	Stamp   time.Time `json:"stamp"`
	Pose    Pose      `json:"pose"`
}

// Transform carries the translation and rotation from a parent frame to a
// child frame.
type Transform struct {
	Translation Vec3       `json:"translation"`
	Rotation    Quaternion `json:"rotation"`
}

// TransformStamped is a transform tagged with its parent and child frames.
type TransformStamped struct {
	ParentFrame string    `json:"parent_frame"`
	ChildFrame  string    `json:"child_frame"`
	Stamp       time.Time `json:"stamp"`
	Transform   Transform `json:"transform"`
}

// PoseFromTransform lifts a transform into a pose stamped in the transform's
// parent frame. The translation becomes the position and the rotation the
// orientation, copied field for field.
func PoseFromTransform(ts TransformStamped) PoseStamped {
	return PoseStamped{
		FrameID: ts.ParentFrame,
		Stamp:   ts.Stamp,
		Pose: Pose{
			Position:    ts.Transform.Translation,
			Orientation: ts.Transform.Rotation,
		},
	}
}
