// File: internal/routedoc/generator.go

// Package routedoc materializes the behavior-tree override document that
// makes the navigation stack stop short of the literal goal by a distance
// margin. The document is a standard navigate-with-replanning tree with a
// path-truncation stage inserted before path following; the only variable is
// the truncation distance.
package routedoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const mainTreeID = "MainTree"

// Generator writes override documents into a fixed output directory.
type Generator struct {
	outputDir string
	logger    *zap.Logger
}

// NewGenerator creates a generator writing into outputDir, creating the
// directory if needed. An empty outputDir falls back to the system temp dir.
func NewGenerator(outputDir string, logger *zap.Logger) (*Generator, error) {
	if outputDir == "" {
		outputDir = filepath.Join(os.TempDir(), "btnav-routedoc")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create route document directory: %w", err)
	}
	return &Generator{outputDir: outputDir, logger: logger.Named("routedoc")}, nil
}

// Generate writes a truncated-follow-path document parameterized by the
// distance tolerance in meters and returns its path. Each call produces a
// fresh file so concurrently active goals never share a document.
func (g *Generator) Generate(distanceTolerance float64) (string, error) {
	if distanceTolerance < 0 {
		return "", fmt.Errorf("distance tolerance must be non-negative, got %f", distanceTolerance)
	}

	doc := g.buildDocument(distanceTolerance)
	path := filepath.Join(g.outputDir, fmt.Sprintf("truncated_%s.xml", uuid.NewString()))

	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return "", fmt.Errorf("failed to write route document: %w", err)
	}

	g.logger.Debug("generated route override document",
		zap.String("path", path),
		zap.Float64("distance_tolerance", distanceTolerance))
	return path, nil
}

func (g *Generator) buildDocument(distanceTolerance float64) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("root")
	root.CreateAttr("main_tree_to_execute", mainTreeID)

	tree := root.CreateElement("BehaviorTree")
	tree.CreateAttr("ID", mainTreeID)

	pipeline := tree.CreateElement("PipelineSequence")
	pipeline.CreateAttr("name", "NavigateWithReplanning")

	controller := pipeline.CreateElement("RateController")
	controller.CreateAttr("hz", "1.0")

	seq := controller.CreateElement("Sequence")

	compute := seq.CreateElement("ComputePathToPose")
	compute.CreateAttr("goal", "{goal}")
	compute.CreateAttr("path", "{path}")

	truncate := seq.CreateElement("TruncatePath")
	truncate.CreateAttr("input_path", "{path}")
	truncate.CreateAttr("output_path", "{truncated_path}")
	truncate.CreateAttr("distance", fmt.Sprintf("%.2f", distanceTolerance))

	follow := pipeline.CreateElement("FollowPath")
	follow.CreateAttr("path", "{truncated_path}")

	return doc
}
