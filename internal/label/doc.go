// Package label turns raw labeler output into presentable component
// names.
//
// The Labeler interface is the boundary to the external naming model.
// Two implementations ship with the module: HTTPLabeler, a client for a
// vision-language model service, and OCRLabeler, which reads the crop's
// visible text with Tesseract. Both return unconstrained free-form text
// — possibly empty, possibly multi-sentence — and the pipeline never
// assumes a well-formed answer: every response passes through Sanitize.
//
// Sanitize reduces an answer to at most three words and forty
// characters, strips the model's verbose framing, and maps refusals and
// empty results to the "Unknown" sentinel. Sentinel labels (and the
// pipeline's component_N placeholders) are recognized by IsSentinel and
// exempted from label-based deduplication.
package label
