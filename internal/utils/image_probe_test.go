package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProbeImageURLAcceptsImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer srv.Close()

	if err := ProbeImageURL(context.Background(), srv.URL, time.Second); err != nil {
		t.Fatalf("expected image to be accepted: %v", err)
	}
}

func TestProbeImageURLRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	err := ProbeImageURL(context.Background(), srv.URL, time.Second)
	if !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestProbeImageURLRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if err := ProbeImageURL(context.Background(), srv.URL, time.Second); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestProbeImageURLRejectsBadScheme(t *testing.T) {
	for _, url := range []string{"", "ftp://example.com/pic.png", "javascript:alert(1)", "file:///etc/passwd"} {
		if err := ProbeImageURL(context.Background(), url, time.Second); err == nil {
			t.Fatalf("expected error for url %q", url)
		}
	}
}

func TestIsImageContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/jpeg; charset=binary", true},
		{"IMAGE/GIF", true},
		{"text/html", false},
		{"application/octet-stream", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isImageContentType(tt.contentType); got != tt.want {
			t.Errorf("isImageContentType(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}
