// File: internal/percept/feed.go
package percept

import (
	"fmt"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/openrover/btnav/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Frame is one timestamped batch of detections in a scenario file.
type Frame struct {
	OffsetMS   int64               `json:"offset_ms"`
	Detections []schemas.Detection `json:"detections"`
}

// LoadScenario reads a detection scenario from a JSON file: an array of
// frames replayed against the store by the CLI. Frames are sorted by offset
// and each frame's detections by descending confidence, which establishes
// the best-first ranking ByFeatures preserves.
func LoadScenario(path string) ([]Frame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading detection scenario: %w", err)
	}

	var frames []Frame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return nil, fmt.Errorf("parsing detection scenario: %w", err)
	}

	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].OffsetMS < frames[j].OffsetMS
	})
	for _, frame := range frames {
		ds := frame.Detections
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].Confidence > ds[j].Confidence
		})
	}
	return frames, nil
}
