package proposer

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/anibitri/diagram-ar/internal/geometry"
)

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 64, 64))
}

func TestStatic_CopiesDetections(t *testing.T) {
	s := &Static{Detections: []RawDetection{
		{Box: geometry.Box{X1: 1, Y1: 2, X2: 30, Y2: 40}, Confidence: 0.7},
	}}

	got, err := s.Propose(context.Background(), testImage())
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if len(got) != 1 || got[0] != s.Detections[0] {
		t.Fatalf("got %v, want %v", got, s.Detections)
	}

	// Mutating the result must not touch the proposer's own list.
	got[0].Confidence = 0
	if s.Detections[0].Confidence != 0.7 {
		t.Error("Propose returned a shared slice")
	}
}

func TestStatic_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Static{}
	if _, err := s.Propose(ctx, testImage()); err == nil {
		t.Fatal("want error for cancelled context")
	}
}

func TestLoadDetections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detections.json")
	data := `{"detections": [
		{"box": {"x1": 10, "y1": 20, "x2": 110, "y2": 220}, "confidence": 0.91},
		{"box": {"x1": 5, "y1": 5, "x2": 50, "y2": 50}, "confidence": 0.42}
	]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadDetections(path)
	if err != nil {
		t.Fatalf("LoadDetections: %v", err)
	}
	if len(s.Detections) != 2 {
		t.Fatalf("loaded %d detections, want 2", len(s.Detections))
	}
	want := RawDetection{Box: geometry.Box{X1: 10, Y1: 20, X2: 110, Y2: 220}, Confidence: 0.91}
	if s.Detections[0] != want {
		t.Errorf("first detection = %v, want %v", s.Detections[0], want)
	}
}

func TestLoadDetections_MissingFile(t *testing.T) {
	if _, err := LoadDetections(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadDetections_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDetections(path); err == nil {
		t.Fatal("want error for malformed JSON")
	}
}
