package overlay

import (
	"math"
	"regexp"
	"testing"

	"github.com/anibitri/diagram-ar/internal/pipeline"
)

var hexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestColors(t *testing.T) {
	for _, n := range []int{1, 5, 12} {
		got := Colors(n)
		if len(got) != n {
			t.Fatalf("Colors(%d) returned %d entries", n, len(got))
		}
		seen := make(map[string]bool, n)
		for _, c := range got {
			if !hexRe.MatchString(c) {
				t.Errorf("Colors(%d) produced malformed hex %q", n, c)
			}
			if seen[c] {
				t.Errorf("Colors(%d) repeated color %q", n, c)
			}
			seen[c] = true
		}
	}
}

func TestColors_NonPositive(t *testing.T) {
	if got := Colors(0); got != nil {
		t.Errorf("Colors(0) = %v, want nil", got)
	}
	if got := Colors(-3); got != nil {
		t.Errorf("Colors(-3) = %v, want nil", got)
	}
}

func TestRelationships(t *testing.T) {
	components := []pipeline.Component{
		{ID: "a", CenterX: 0.10, CenterY: 0.10},
		{ID: "b", CenterX: 0.20, CenterY: 0.10}, // 0.10 from a
		{ID: "c", CenterX: 0.80, CenterY: 0.80}, // far from both
	}

	got := Relationships(components, 0.15)
	if len(got) != 1 {
		t.Fatalf("got %d connections, want 1: %+v", len(got), got)
	}
	if got[0].From != "a" || got[0].To != "b" {
		t.Errorf("connection = %s -> %s, want a -> b", got[0].From, got[0].To)
	}
	if math.Abs(got[0].Distance-0.10) > 1e-9 {
		t.Errorf("distance = %v, want 0.10", got[0].Distance)
	}
}

func TestRelationships_BeyondThreshold(t *testing.T) {
	components := []pipeline.Component{
		{ID: "a", CenterX: 0.10, CenterY: 0.50},
		{ID: "b", CenterX: 0.30, CenterY: 0.50},
	}

	if got := Relationships(components, 0.15); len(got) != 0 {
		t.Fatalf("distance past the threshold produced %+v, want none", got)
	}
}

func TestRelationships_FewerThanTwo(t *testing.T) {
	if got := Relationships(nil, 0.15); got != nil {
		t.Errorf("Relationships(nil) = %v", got)
	}
	one := []pipeline.Component{{ID: "a"}}
	if got := Relationships(one, 0.15); got != nil {
		t.Errorf("Relationships(one) = %v", got)
	}
}
