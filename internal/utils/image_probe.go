package utils

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"
)

// ErrNotAnImage is returned when the probed URL resolves but does not serve
// image content.
var ErrNotAnImage = errors.New("url does not point to an image")

const DefaultProbeTimeout = 5 * time.Second

// ProbeImageURL checks that a remote URL is reachable and serves an image.
// It is a single bounded fetch with no retries; callers must not hold a
// store transaction open across it.
func ProbeImageURL(ctx context.Context, rawURL string, timeout time.Duration) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return errors.New("empty image url")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return fmt.Errorf("invalid url scheme: %s", trimmed)
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, trimmed, nil)
	if err != nil {
		return fmt.Errorf("create image request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch image http %d", resp.StatusCode)
	}
	if !isImageContentType(resp.Header.Get("Content-Type")) {
		return ErrNotAnImage
	}
	return nil
}

func isImageContentType(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return false
	}
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = parsed
	}
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}
