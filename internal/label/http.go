package label

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"
)

// HTTPLabeler asks a vision-language model service for the visible name
// of a cropped region. The service receives the crop as base64 PNG plus
// the fixed instruction prompt and answers with free-form text.
type HTTPLabeler struct {
	baseURL    string
	httpClient *http.Client
}

// labelRequest is the wire format sent to the vision service.
type labelRequest struct {
	Image  string `json:"image"`  // Base64 encoded PNG
	Format string `json:"format"` // Always "base64"
	Prompt string `json:"prompt"`
}

// labelResponse is the wire format returned by the vision service.
type labelResponse struct {
	Label string `json:"label"`
	Error string `json:"error,omitempty"`
}

// NewHTTPLabeler creates a labeler client for the vision service at
// baseURL. The client timeout is a transport-level safety net; the
// per-call deadline comes from the caller's context.
func NewHTTPLabeler(baseURL string) *HTTPLabeler {
	return &HTTPLabeler{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Label sends the crop to the vision service and returns its raw
// answer. The answer may be empty or verbose; callers sanitize it.
func (l *HTTPLabeler) Label(ctx context.Context, crop image.Image) (string, error) {
	var imgBuf bytes.Buffer
	if err := png.Encode(&imgBuf, crop); err != nil {
		return "", fmt.Errorf("failed to encode crop: %w", err)
	}

	payload, err := json.Marshal(labelRequest{
		Image:  base64.StdEncoding.EncodeToString(imgBuf.Bytes()),
		Format: "base64",
		Prompt: Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/v1/label", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vision service returned status %d: %s", resp.StatusCode, body)
	}

	var lr labelResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if lr.Error != "" {
		return "", fmt.Errorf("vision service error: %s", lr.Error)
	}
	return lr.Label, nil
}
