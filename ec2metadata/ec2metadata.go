// Package ec2metadata provides the built-in loader for the EC2 instance
// metadata service.
//
// Template usage:
//
//	Instance: %awsec2metadata:instance-id%
//	Region:   %awsec2metadata:placement/region%
//
// The key is the metadata path below the base URL. The response body is the
// value, verbatim.
package ec2metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/randalmurphal/injectkit/loader"
)

// TemplateKey is the placeholder tag that selects this loader.
const TemplateKey = "awsec2metadata"

// DefaultBaseURL is the well-known EC2 instance metadata endpoint.
const DefaultBaseURL = "http://169.254.169.254/latest/meta-data"

// endpointEnvVar overrides the metadata endpoint, matching the variable the
// AWS SDKs honor.
const endpointEnvVar = "AWS_EC2_METADATA_SERVICE_ENDPOINT"

func init() {
	loader.RegisterBuiltin(TemplateKey, func(_ context.Context) (loader.Loader, error) {
		return New(), nil
	})
}

// Loader loads values from the EC2 instance metadata service.
type Loader struct {
	baseURL string
	client  *http.Client
}

// Option configures a Loader.
type Option func(*Loader)

// WithBaseURL points the loader at a different metadata endpoint.
func WithBaseURL(url string) Option {
	return func(l *Loader) {
		l.baseURL = url
	}
}

// WithHTTPClient substitutes the HTTP client used for metadata requests.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// New creates a Loader against the default metadata endpoint, or the one
// named by AWS_EC2_METADATA_SERVICE_ENDPOINT if set.
func New(opts ...Option) *Loader {
	l := &Loader{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	if v := os.Getenv(endpointEnvVar); v != "" {
		l.baseURL = v
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the metadata value at the path named by key.
func (l *Loader) Load(ctx context.Context, key string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(l.baseURL, key), nil)
	if err != nil {
		return "", fmt.Errorf("build metadata request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("metadata path %q: %w", key, loader.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("metadata service returned %s for %q", resp.Status, key)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read metadata response: %w", err)
	}
	return string(body), nil
}

// joinURL joins base and path with exactly one slash between them, whatever
// combination of trailing and leading slashes they carry.
func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
