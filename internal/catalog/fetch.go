package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrStatus is wrapped by HTTPFetcher for non-2xx responses
var ErrStatus = errors.New("unexpected status")

// Fetcher retrieves the raw catalog resource
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// NewFetcher returns an HTTP fetcher for http(s) URLs and a file fetcher
// for anything else.
func NewFetcher(source string, timeout time.Duration) Fetcher {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return &HTTPFetcher{
			URL:    source,
			Client: &http.Client{Timeout: timeout},
		}
	}
	return &FileFetcher{Path: source}
}

// HTTPFetcher GETs the catalog from a URL
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %w %d", f.URL, ErrStatus, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// FileFetcher reads the catalog from disk
type FileFetcher struct {
	Path string
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.Path)
}
