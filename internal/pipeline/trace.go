package pipeline

import (
	"sync"

	"github.com/anibitri/diagram-ar/internal/geometry"
)

// Trace receives diagnostic events from a pipeline run.
//
// Tracing is observability only: no decision logic ever consults it, and
// a nil Trace disables it entirely. Implementations must be safe for
// concurrent use because the parallel stages report from worker
// goroutines.
type Trace interface {
	// StageComplete reports a stage finishing with its input and output
	// segment counts.
	StageComplete(stage string, in, out int)

	// SegmentComplexity reports the measured variance and edge density
	// of one segment along with the pass/fail outcome.
	SegmentComplexity(box geometry.Box, variance, edgeDensity float64, passed bool)
}

// StageEvent is one recorded StageComplete call.
type StageEvent struct {
	Stage string
	In    int
	Out   int
}

// ComplexityEvent is one recorded SegmentComplexity call.
type ComplexityEvent struct {
	Box         geometry.Box
	Variance    float64
	EdgeDensity float64
	Passed      bool
}

// CollectingTrace accumulates events in memory. Useful for tests and
// for the CLI's debug output.
type CollectingTrace struct {
	mu         sync.Mutex
	Stages     []StageEvent
	Complexity []ComplexityEvent
}

func (t *CollectingTrace) StageComplete(stage string, in, out int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Stages = append(t.Stages, StageEvent{Stage: stage, In: in, Out: out})
}

func (t *CollectingTrace) SegmentComplexity(box geometry.Box, variance, edgeDensity float64, passed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Complexity = append(t.Complexity, ComplexityEvent{
		Box:         box,
		Variance:    variance,
		EdgeDensity: edgeDensity,
		Passed:      passed,
	})
}

// nopTrace backs a nil Trace so stages never need a nil check.
type nopTrace struct{}

func (nopTrace) StageComplete(string, int, int) {}

func (nopTrace) SegmentComplexity(geometry.Box, float64, float64, bool) {}
