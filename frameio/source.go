package frameio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open returns the contents of a local file or an http(s) URL. The request
// is made once; a non-2xx status is an error. The caller closes the reader.
func Open(ctx context.Context, location string, opts ...Option) (io.ReadCloser, error) {
	cfg := newConfig(opts)
	if !isURL(location) {
		cfg.Logger.V(1).Info("opening file", "path", location)
		file, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return file, nil
	}

	cfg.Logger.V(1).Info("fetching", "url", location)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := cfg.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: %s", location, resp.Status)
	}
	cfg.Logger.V(1).Info("fetched", "url", location, "status", resp.StatusCode)
	return resp.Body, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
