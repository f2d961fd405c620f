// Package imaging provides the pixel-level operations the extraction
// pipeline needs: image loading, region cropping, and local grayscale
// statistics over bounding boxes.
//
// All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Grayscale Statistics
//
// The Gray type is a one-time luminance conversion of the source image.
// Per-box statistics (border-ring median, row/column deviation scans,
// intensity standard deviation, gradient edge density) read from it
// without mutating anything, so independent boxes can be analyzed
// concurrently.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Crop regions outside image bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - File I/O or decode errors during image loading
package imaging
