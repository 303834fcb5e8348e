package textsource

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hemant-mistri/portfolio/internal/logger"
)

// DefaultSource is the résumé shipped with the site.
const DefaultSource = "./public/cv.pdf"

// Loader fetches source bytes from a path, a file:// URL or an http(s) URL.
type Loader struct {
	client *resty.Client
}

func NewLoader(timeout time.Duration) *Loader {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/pdf")
	return &Loader{client: client}
}

// Load reads the whole source into memory. Failures are *DecodeError.
func (l *Loader) Load(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		source = DefaultSource
	}

	u, err := url.Parse(source)
	if err != nil || u.Scheme == "" || isWindowsDrive(u.Scheme) {
		return readFile(source)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		path := u.Path
		if u.Opaque != "" {
			path = u.Opaque
		}
		return readFile(filepath.FromSlash(path))
	case "http", "https":
		return l.fetch(ctx, source)
	default:
		return nil, &DecodeError{Source: source, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	start := time.Now()
	resp, err := l.client.R().SetContext(ctx).Get(source)
	if err != nil {
		return nil, &DecodeError{Source: source, Err: fmt.Errorf("fetch: %w", err)}
	}
	if resp.IsError() {
		return nil, &DecodeError{Source: source, Err: fmt.Errorf("fetch: unexpected status %d", resp.StatusCode())}
	}
	logger.Debug().
		Str("source", source).
		Int("bytes", len(resp.Body())).
		Dur("took", time.Since(start)).
		Msg("fetched remote document")
	return resp.Body(), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}
	return data, nil
}

// isWindowsDrive treats "C:\cv.pdf" as a path rather than a URL scheme.
func isWindowsDrive(scheme string) bool {
	return len(scheme) == 1
}
