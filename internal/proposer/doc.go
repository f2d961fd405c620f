// Package proposer defines the boundary to the external segmentation
// model that supplies raw candidate regions.
//
// The model is consumed as an opaque black box through the
// RegionProposer interface: one full image in, a list of RawDetection
// out, no ordering assumed. HTTPProposer talks to a segmentation
// service over HTTP; Static serves a precomputed list, which is how the
// CLI consumes sidecar detection files and how tests inject fixtures;
// Local detects rectangular contours on the CPU for installations with
// no segmentation service at all.
package proposer
