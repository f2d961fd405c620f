// Package overlay provides rendering support for the extracted
// component list: distinct per-component colors and proximity-based
// relationship analysis. Rendering itself happens in the frontend; this
// package only prepares data it can draw from.
package overlay
