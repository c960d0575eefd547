package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// httpClient is the shared client for all upstream requests.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// defaultUserAgent is sent when the caller sets no User-Agent header.
// Some upstreams (SEC in particular) reject requests without one.
const defaultUserAgent = "Mozilla/5.0 (compatible; datwatch/1.0)"

// DoGet performs an HTTP GET with the given headers and returns the
// response body and status code. The caller must close the body on a
// nil error. Non-2xx responses drain the body and return an error.
func DoGet(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", defaultUserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("GET %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, resp.StatusCode, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	return resp.Body, resp.StatusCode, nil
}

// GetJSONBytes performs a GET and returns the full response body.
func GetJSONBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	body, _, err := DoGet(ctx, url, headers)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}
