package extraction

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"
)

const maxImageBytes = 10 * 1024 * 1024

// fetchImage downloads the menu photo and reports its media type.
// The size ceiling is checked on the Content-Length header first and again
// while reading, so an oversized payload never reaches the model.
func fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &FetchError{URL: url, Status: resp.StatusCode}
	}

	if resp.ContentLength > maxImageBytes {
		return nil, "", ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}
	if len(data) > maxImageBytes {
		return nil, "", ErrImageTooLarge
	}

	return data, detectMediaType(resp.Header.Get("Content-Type"), url), nil
}

func detectMediaType(contentType, url string) string {
	if contentType != "" && strings.HasPrefix(contentType, "image/") {
		if i := strings.Index(contentType, ";"); i != -1 {
			contentType = contentType[:i]
		}
		return strings.TrimSpace(contentType)
	}

	switch strings.ToLower(path.Ext(url)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
