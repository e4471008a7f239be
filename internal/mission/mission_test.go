package mission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrover/btnav/internal/bt"
	"github.com/openrover/btnav/internal/nav"
)

func writeMission(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mission.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ValidMission(t *testing.T) {
	path := writeMission(t, `
name: patrol-and-find
frames:
  - frame: charging_dock
    x: 0.5
    y: 0.5
legs:
  - name: hallway
    x: 4.0
    y: 0.0
  - name: dock approach
    tf_frame: charging_dock
    will_finish: true
    is_truncated: true
    distance_tolerance: 0.8
search:
  target: backpack
  confidence: 0.7
  what: object
  entity_to_identify: lost_item
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "patrol-and-find", m.Name)
	require.Len(t, m.Legs, 2)
	assert.Equal(t, "charging_dock", m.Legs[1].TFFrame)
	assert.True(t, m.Legs[1].WillFinish)
	require.NotNil(t, m.Search)
	assert.Equal(t, "backpack", m.Search.Target)
	require.Len(t, m.Frames, 1)
	assert.Equal(t, "charging_dock", m.Frames[0].Frame)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading mission file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeMission(t, "legs: [ {name: broken")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing mission file")
}

func TestValidate(t *testing.T) {
	finalLeg := Leg{Name: "final", WillFinish: true}

	cases := []struct {
		name    string
		mission Mission
		wantErr string
	}{
		{
			name:    "no legs",
			mission: Mission{},
			wantErr: "at least one leg",
		},
		{
			name: "will_finish on a middle leg",
			mission: Mission{Legs: []Leg{
				{Name: "early", WillFinish: true},
				finalLeg,
			}},
			wantErr: "only valid on the final leg",
		},
		{
			name:    "final leg without will_finish",
			mission: Mission{Legs: []Leg{{Name: "only"}}},
			wantErr: "must set will_finish",
		},
		{
			name: "truncated leg without tolerance",
			mission: Mission{Legs: []Leg{
				{Name: "final", WillFinish: true, IsTruncated: true},
			}},
			wantErr: "positive distance_tolerance",
		},
		{
			name: "unnamed frame",
			mission: Mission{
				Frames: []FrameDef{{X: 1}},
				Legs:   []Leg{finalLeg},
			},
			wantErr: "frame name must not be empty",
		},
		{
			name: "search without target",
			mission: Mission{
				Legs:   []Leg{finalLeg},
				Search: &Search{Confidence: 0.5},
			},
			wantErr: "target descriptor",
		},
		{
			name: "search confidence out of range",
			mission: Mission{
				Legs:   []Leg{finalLeg},
				Search: &Search{Target: "chair", Confidence: 1.5},
			},
			wantErr: "within [0, 1]",
		},
		{
			name:    "minimal valid mission",
			mission: Mission{Legs: []Leg{finalLeg}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mission.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLeg_ApplyTo(t *testing.T) {
	bb := bt.NewBlackboard()
	leg := Leg{
		Name:              "shelf run",
		TFFrame:           "shelf_3",
		X:                 1.5,
		Y:                 -2.0,
		WillFinish:        true,
		IsTruncated:       true,
		DistanceTolerance: 0.6,
	}

	leg.ApplyTo(bb)

	p := nav.ReadGoalParams(bb)
	assert.Equal(t, "shelf_3", p.ReferenceFrame)
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, -2.0, p.Y)
	assert.True(t, p.WillFinish)
	assert.True(t, p.Truncated)
	assert.Equal(t, 0.6, p.DistanceTolerance)
}
