package pslstat

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	urlutil "github.com/projectdiscovery/utils/url"
)

// DefaultSourceURL is the public suffix list mirror analyzed by default.
const DefaultSourceURL = "https://psl.hrsn.dev/public_suffix_list.min.dat"

// DefaultTimeout bounds the list download.
const DefaultTimeout = 30 * time.Second

// Fetcher provides the raw suffix list text. Implementations fail on the
// first transport error, there is no retry.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// HTTPFetcher downloads the suffix list from a URL with an identifying
// User-Agent header.
type HTTPFetcher struct {
	URL       string
	UserAgent string
	client    *http.Client
}

// NewHTTPFetcher validates sourceURL and returns a fetcher for it.
func NewHTTPFetcher(sourceURL, userAgent string, timeout time.Duration) (*HTTPFetcher, error) {
	if _, err := urlutil.Parse(sourceURL); err != nil {
		return nil, errorutil.NewWithTag("pslstat", "invalid source url %v got %v", sourceURL, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		URL:       sourceURL,
		UserAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Fetch downloads the list and returns its body as UTF-8 text.
func (f *HTTPFetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", errorutil.NewWithTag("pslstat", "failed to build request for %v got %v", f.URL, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", errorutil.NewWithTag("pslstat", "failed to fetch %v got %v", f.URL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errorutil.NewWithTag("pslstat", "failed to fetch %v got status %v", f.URL, resp.Status)
	}
	bin, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errorutil.NewWithTag("pslstat", "failed to read response from %v got %v", f.URL, err)
	}
	return string(bin), nil
}

// FileFetcher reads an already downloaded suffix list from disk.
type FileFetcher struct {
	Path string
}

// Fetch reads the local list file.
func (f *FileFetcher) Fetch(_ context.Context) (string, error) {
	if !fileutil.FileExists(f.Path) {
		return "", errorutil.NewWithTag("pslstat", "input file %v does not exist", f.Path)
	}
	bin, err := os.ReadFile(f.Path)
	if err != nil {
		return "", errorutil.NewWithTag("pslstat", "failed to read input file %v got %v", f.Path, err)
	}
	return string(bin), nil
}
