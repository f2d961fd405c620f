// Package pipeline turns noisy machine-generated region proposals into
// a clean, deduplicated, normalized, labeled component list for overlay
// rendering on technical diagrams.
//
// # Stages
//
// The pipeline is a fixed, strictly sequential chain of whole-list
// transformations. Each stage's full output is the next stage's full
// input:
//
//  1. Segment filtering — structurally invalid raw detections (size,
//     aspect ratio, border artifacts, low confidence) are rejected.
//  2. Box tightening — each surviving box is shrunk inward to its
//     actual visual content by per-side luminance scanning.
//  3. Overlap resolution — full-image background detections are
//     removed, then nesting-aware duplicate suppression keeps genuine
//     parent/child pairs while dropping near-duplicate overlaps.
//  4. Containment deduplication — boxes spanning multiple real
//     components are removed by pure geometric containment; genuine
//     single-child containers survive.
//  5. Complexity filtering — visually blank, background-like regions
//     are dropped, with an area bypass for large detections.
//  6. Normalization — pixel boxes become Components with [0,1]
//     coordinates.
//  7. Labeling — the external labeler names each component; answers are
//     sanitized and failures isolated per component as "Unknown".
//  8. Label deduplication — identically-labeled components collapse to
//     the highest-confidence instance.
//
// Stages 3 and 4 need a global view of all surviving segments, so each
// stage completes fully before the next begins. Within stages 2 and 5
// per-segment work is pure and runs on a bounded worker pool; results
// are identical regardless of parallelism degree.
//
// # State and Reentrancy
//
// The pipeline holds no state beyond one invocation. Nothing is mutated
// in place — entities are simply dropped from the list when filtered —
// and an Extractor is safe for concurrent Extract calls.
//
// # Failure Model
//
// Malformed images and invalid configurations fail fast. A region
// proposer failure is fatal for the run. Labeler failures are recovered
// locally: the affected component is labeled "Unknown" and the run
// continues. No stage retries internally; all filtering stages are pure
// and deterministic, so a retry could not change their output.
package pipeline
