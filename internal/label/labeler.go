package label

import (
	"context"
	"image"
)

// Prompt is the fixed instruction sent alongside each crop. The wording
// is tuned to suppress multi-sentence answers; whatever comes back is
// still routed through Sanitize, never trusted as-is.
const Prompt = "What text or label is visible in this cropped region from a technical diagram? " +
	"Reply with ONLY the text/name you see, nothing else. " +
	"Maximum 3 words. No sentences. No explanations. " +
	"If no text is visible, reply: Unknown"

// Labeler produces a raw free-form name for one cropped pixel region.
//
// Implementations are expensive process-wide resources (vision model
// clients, OCR engines) injected once and passed by reference into each
// pipeline invocation. The returned text may be empty or multi-sentence;
// callers must sanitize it.
type Labeler interface {
	Label(ctx context.Context, crop image.Image) (string, error)
}

// Func adapts an ordinary function to the Labeler interface.
type Func func(ctx context.Context, crop image.Image) (string, error)

func (f Func) Label(ctx context.Context, crop image.Image) (string, error) {
	return f(ctx, crop)
}
