package label

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// OCRLabeler names components by reading the text visible in the crop
// with Tesseract. It needs no network or model service, which makes it
// the default for diagrams whose components carry printed names.
//
// Each call creates its own Tesseract client, so one OCRLabeler is safe
// for concurrent use.
type OCRLabeler struct {
	// Language is the Tesseract language code (e.g. "eng"). The
	// corresponding language data must be installed on the system.
	Language string
}

// NewOCRLabeler returns an OCR-backed labeler for the given language.
func NewOCRLabeler(language string) *OCRLabeler {
	if language == "" {
		language = "eng"
	}
	return &OCRLabeler{Language: language}
}

// Label runs OCR on the crop and returns the raw recognized text.
// The pipeline's sanitizer handles whitespace, length, and fallbacks.
func (o *OCRLabeler) Label(ctx context.Context, crop image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, crop); err != nil {
		return "", fmt.Errorf("failed to encode crop: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(o.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
