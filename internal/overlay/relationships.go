package overlay

import (
	"math"

	"github.com/anibitri/diagram-ar/internal/pipeline"
)

// Connection links two components whose centers lie close together,
// suggesting a spatial relationship worth drawing in the overlay.
type Connection struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Relationships finds component pairs whose normalized center-to-center
// distance is below proximityThreshold.
//
// Pairs are emitted in input order (i before j, i < j). With fewer than
// two components there is nothing to relate and the result is empty.
func Relationships(components []pipeline.Component, proximityThreshold float64) []Connection {
	if len(components) < 2 {
		return nil
	}

	var connections []Connection
	for i, a := range components {
		for _, b := range components[i+1:] {
			dx := a.CenterX - b.CenterX
			dy := a.CenterY - b.CenterY
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < proximityThreshold {
				connections = append(connections, Connection{
					From:     a.ID,
					To:       b.ID,
					Distance: dist,
				})
			}
		}
	}
	return connections
}
