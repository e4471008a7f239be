package schemas

import "time"

// -- Perception Schemas --

// DetectionClass selects which detector pipeline produced (or should look
// for) an entity.
type DetectionClass string

const (
	ClassPerson DetectionClass = "person"
	ClassObject DetectionClass = "object"
)

// ParseDetectionClass maps a free-form category string onto a known class.
// Unknown categories degrade to ClassObject; ok reports whether the input
// was recognized so callers can warn without failing.
func ParseDetectionClass(what string) (DetectionClass, bool) {
	switch what {
	case string(ClassPerson):
		return ClassPerson, true
	case string(ClassObject):
		return ClassObject, true
	default:
		return ClassObject, false
	}
}

// Detection is a single perceived entity as reported by the perception
// collaborator. Positions are in the robot body frame: X forward, Y left.
type Detection struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Class      DetectionClass `json:"class"`
	Center3D   Vec3           `json:"center3d"`
	Confidence float64        `json:"confidence"`
	At         time.Time      `json:"at"`
}
