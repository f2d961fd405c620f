package proposer

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

	"github.com/anibitri/diagram-ar/internal/geometry"
)

// HTTPProposer is a client for a segmentation model service. The image
// is sent as base64 PNG; the service answers with a detection list.
type HTTPProposer struct {
	baseURL    string
	httpClient *http.Client
}

// proposeRequest is the wire format sent to the segmentation service.
type proposeRequest struct {
	Image  string `json:"image"`  // Base64 encoded PNG
	Format string `json:"format"` // Always "base64"
}

// proposeResponse is the wire format returned by the segmentation
// service. Boxes arrive as [x1, y1, x2, y2] pixel arrays.
type proposeResponse struct {
	Detections []struct {
		Box        [4]int  `json:"box"`
		Confidence float64 `json:"confidence"`
	} `json:"detections"`
	Error string `json:"error,omitempty"`
}

// NewHTTPProposer creates a proposer client for the segmentation
// service at baseURL.
func NewHTTPProposer(baseURL string) *HTTPProposer {
	return &HTTPProposer{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Propose submits the full image and decodes the candidate regions.
func (p *HTTPProposer) Propose(ctx context.Context, img image.Image) ([]RawDetection, error) {
	var imgBuf bytes.Buffer
	if err := png.Encode(&imgBuf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	payload, err := json.Marshal(proposeRequest{
		Image:  base64.StdEncoding.EncodeToString(imgBuf.Bytes()),
		Format: "base64",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/segment", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("segmentation service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("segmentation service returned status %d: %s", resp.StatusCode, body)
	}

	var pr proposeResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if pr.Error != "" {
		return nil, fmt.Errorf("segmentation service error: %s", pr.Error)
	}

	detections := make([]RawDetection, 0, len(pr.Detections))
	for _, d := range pr.Detections {
		detections = append(detections, RawDetection{
			Box:        geometry.Box{X1: d.Box[0], Y1: d.Box[1], X2: d.Box[2], Y2: d.Box[3]},
			Confidence: d.Confidence,
		})
	}
	return detections, nil
}
