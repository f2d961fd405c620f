package pipeline

import (
	"context"
	"testing"

	"github.com/anibitri/diagram-ar/internal/geometry"
	"github.com/anibitri/diagram-ar/internal/imaging"
)

func TestFilterByComplexity_LargeBlankBypassed(t *testing.T) {
	cfg := DefaultConfig()
	gray := imaging.NewGray(testDiagram(1000, 1000))

	// 200x200 on a 1000x1000 image is 4% of the area, well above the
	// bypass cutoff, so it passes without any pixel measurement.
	big := Segment{Box: geometry.Box{X1: 0, Y1: 0, X2: 200, Y2: 200}, Confidence: 0.9}
	got := filterByComplexity(context.Background(), gray, []Segment{big}, cfg, nopTrace{})

	if len(got) != 1 {
		t.Fatalf("large blank segment was dropped; area bypass not applied")
	}
}

func TestFilterByComplexity_SmallBlankDropped(t *testing.T) {
	cfg := DefaultConfig()
	gray := imaging.NewGray(testDiagram(1000, 1000))

	small := Segment{Box: geometry.Box{X1: 0, Y1: 0, X2: 100, Y2: 100}, Confidence: 0.9}
	got := filterByComplexity(context.Background(), gray, []Segment{small}, cfg, nopTrace{})

	if len(got) != 0 {
		t.Fatalf("blank 1%% segment survived the complexity filter")
	}
}

func TestFilterByComplexity_SmallTexturedKept(t *testing.T) {
	cfg := DefaultConfig()
	content := geometry.Box{X1: 320, Y1: 320, X2: 380, Y2: 380}
	gray := imaging.NewGray(testDiagram(1000, 1000, content))

	seg := Segment{Box: geometry.Box{X1: 300, Y1: 300, X2: 400, Y2: 400}, Confidence: 0.9}
	got := filterByComplexity(context.Background(), gray, []Segment{seg}, cfg, nopTrace{})

	if len(got) != 1 {
		t.Fatalf("textured segment under the bypass area was dropped")
	}
}

func TestFilterByComplexity_TraceOnlyMeasuredSegments(t *testing.T) {
	cfg := DefaultConfig()
	content := geometry.Box{X1: 320, Y1: 320, X2: 380, Y2: 380}
	gray := imaging.NewGray(testDiagram(1000, 1000, content))

	segs := []Segment{
		{Box: geometry.Box{X1: 0, Y1: 0, X2: 200, Y2: 200}, Confidence: 0.9},     // bypassed
		{Box: geometry.Box{X1: 0, Y1: 500, X2: 100, Y2: 600}, Confidence: 0.8},   // blank, dropped
		{Box: geometry.Box{X1: 300, Y1: 300, X2: 400, Y2: 400}, Confidence: 0.7}, // textured, kept
	}

	trace := &CollectingTrace{}
	got := filterByComplexity(context.Background(), gray, segs, cfg, trace)

	if len(got) != 2 {
		t.Fatalf("kept %d segments, want 2", len(got))
	}
	if len(trace.Complexity) != 2 {
		t.Fatalf("recorded %d complexity events, want 2 (bypassed segments are not measured)", len(trace.Complexity))
	}
	for _, ev := range trace.Complexity {
		wantPass := ev.Box.X1 == 300
		if ev.Passed != wantPass {
			t.Errorf("box %v: passed=%v, want %v (variance=%.2f edges=%.4f)",
				ev.Box, ev.Passed, wantPass, ev.Variance, ev.EdgeDensity)
		}
	}
}
