// File: internal/mission/mission.go

// Package mission loads the multi-leg navigation task description the CLI
// replays through a single NavigateTo node.
package mission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openrover/btnav/internal/bt"
	"github.com/openrover/btnav/internal/nav"
)

// Search configures the perception side of a mission: what to look for once
// navigation completes.
type Search struct {
	Target           string  `yaml:"target"`
	Confidence       float64 `yaml:"confidence"`
	What             string  `yaml:"what"`
	EntityToIdentify string  `yaml:"entity_to_identify"`
}

// Leg is one navigation goal in the chain. TFFrame takes precedence over the
// literal coordinates when set.
type Leg struct {
	Name              string  `yaml:"name"`
	TFFrame           string  `yaml:"tf_frame"`
	X                 float64 `yaml:"x"`
	Y                 float64 `yaml:"y"`
	WillFinish        bool    `yaml:"will_finish"`
	IsTruncated       bool    `yaml:"is_truncated"`
	DistanceTolerance float64 `yaml:"distance_tolerance"`
}

// ApplyTo writes the leg's parameters onto the blackboard ports NavigateTo
// reads.
func (l Leg) ApplyTo(bb *bt.Blackboard) {
	bb.Set(nav.PortTFFrame, l.TFFrame)
	bb.Set(nav.PortX, l.X)
	bb.Set(nav.PortY, l.Y)
	bb.Set(nav.PortWillFinish, l.WillFinish)
	bb.Set(nav.PortIsTruncated, l.IsTruncated)
	bb.Set(nav.PortDistanceTolerance, l.DistanceTolerance)
}

// FrameDef seeds a named reference frame into the transform tree, standing
// in for frames published by mapping or semantic layers.
type FrameDef struct {
	Frame string  `yaml:"frame"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Mission is a named chain of legs with an optional search phase.
type Mission struct {
	Name   string     `yaml:"name"`
	Frames []FrameDef `yaml:"frames"`
	Legs   []Leg      `yaml:"legs"`
	Search *Search    `yaml:"search"`
}

// Load reads and validates a mission file.
func Load(path string) (*Mission, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mission file: %w", err)
	}

	var m Mission
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing mission file: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mission %q: %w", m.Name, err)
	}
	return &m, nil
}

// Validate enforces the leg-chain invariants: the final leg carries
// will_finish, no earlier leg does, and truncated legs carry a positive
// distance tolerance.
func (m *Mission) Validate() error {
	if len(m.Legs) == 0 {
		return fmt.Errorf("mission must contain at least one leg")
	}

	for i, f := range m.Frames {
		if f.Frame == "" {
			return fmt.Errorf("frame %d: frame name must not be empty", i)
		}
	}

	for i, leg := range m.Legs {
		last := i == len(m.Legs)-1
		if leg.WillFinish && !last {
			return fmt.Errorf("leg %d (%s): will_finish is only valid on the final leg", i, leg.Name)
		}
		if last && !leg.WillFinish {
			return fmt.Errorf("final leg (%s) must set will_finish", leg.Name)
		}
		if leg.IsTruncated && leg.DistanceTolerance <= 0 {
			return fmt.Errorf("leg %d (%s): truncated legs require a positive distance_tolerance", i, leg.Name)
		}
	}

	if m.Search != nil {
		if m.Search.Target == "" {
			return fmt.Errorf("search requires a target descriptor")
		}
		if m.Search.Confidence < 0 || m.Search.Confidence > 1 {
			return fmt.Errorf("search confidence must be within [0, 1], got %f", m.Search.Confidence)
		}
	}
	return nil
}
