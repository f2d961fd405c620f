package proposer

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/anibitri/diagram-ar/internal/geometry"
)

// RawDetection is one candidate region from the segmentation model:
// a pixel-space bounding box plus detection confidence in [0, 1].
type RawDetection struct {
	Box        geometry.Box `json:"box"`
	Confidence float64      `json:"confidence"`
}

// RegionProposer produces candidate rectangular regions for an image.
//
// The segmentation model behind it is an opaque black box: typically 0
// to ~50 results, noisy, redundant, in no assumed order. A proposer
// failure is fatal for the invocation since nothing downstream can run
// without candidates.
type RegionProposer interface {
	Propose(ctx context.Context, img image.Image) ([]RawDetection, error)
}

// Static is a RegionProposer that returns a fixed detection list.
// Used by the CLI (detections precomputed to a sidecar file) and tests.
type Static struct {
	Detections []RawDetection
}

func (s *Static) Propose(ctx context.Context, img image.Image) ([]RawDetection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]RawDetection, len(s.Detections))
	copy(out, s.Detections)
	return out, nil
}

// detectionsFile is the sidecar JSON format holding precomputed
// detections for an image.
type detectionsFile struct {
	Detections []RawDetection `json:"detections"`
}

// LoadDetections reads a detection list from a JSON sidecar file and
// wraps it in a Static proposer.
func LoadDetections(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read detections file: %w", err)
	}

	var f detectionsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse detections file: %w", err)
	}

	return &Static{Detections: f.Detections}, nil
}
