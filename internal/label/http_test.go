package label

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testCrop() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 32, 32))
}

func TestHTTPLabeler_Label(t *testing.T) {
	var gotReq labelRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/label" {
			t.Errorf("path = %q, want /v1/label", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(labelResponse{Label: "Pump"})
	}))
	defer srv.Close()

	l := NewHTTPLabeler(srv.URL)
	got, err := l.Label(context.Background(), testCrop())
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if got != "Pump" {
		t.Errorf("label = %q, want %q", got, "Pump")
	}
	if gotReq.Format != "base64" || gotReq.Image == "" {
		t.Errorf("request format=%q image empty=%v", gotReq.Format, gotReq.Image == "")
	}
	if gotReq.Prompt != Prompt {
		t.Errorf("request carried prompt %q", gotReq.Prompt)
	}
}

func TestHTTPLabeler_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	l := NewHTTPLabeler(srv.URL)
	if _, err := l.Label(context.Background(), testCrop()); err == nil {
		t.Fatal("want error on non-200 status")
	}
}

func TestHTTPLabeler_ServiceReportedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(labelResponse{Error: "model not loaded"})
	}))
	defer srv.Close()

	l := NewHTTPLabeler(srv.URL)
	if _, err := l.Label(context.Background(), testCrop()); err == nil {
		t.Fatal("want error when the service reports one")
	}
}

func TestHTTPLabeler_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewHTTPLabeler(srv.URL)
	if _, err := l.Label(ctx, testCrop()); err == nil {
		t.Fatal("want error for cancelled context")
	}
}
