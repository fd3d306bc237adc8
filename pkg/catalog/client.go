package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arthur-debert/reskin/pkg/config"
	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	headerProject = "X-Appwrite-Project"
	headerKey     = "X-Appwrite-Key"

	// DefaultBucket is the storage bucket holding bundle files
	DefaultBucket = "themes"
)

// Options configures a Client
type Options struct {
	Endpoint string
	Project  string
	APIKey   string
	Bucket   string
	Timeout  time.Duration
	Retries  int
	// RetryWaitMin is the first backoff delay; zero keeps the library default
	RetryWaitMin time.Duration
}

// Client is a catalog REST client
type Client struct {
	http     *retryablehttp.Client
	endpoint string
	project  string
	apiKey   string
	bucket   string
}

// New creates a Client. Endpoint and project are required.
func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" || opts.Project == "" {
		return nil, errors.New(errors.ErrCatalog, "catalog is not configured: endpoint and project are required").
			WithDetail("hint", "set catalog.endpoint and catalog.project in config.toml")
	}
	if _, err := url.Parse(opts.Endpoint); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid catalog endpoint %q", opts.Endpoint)
	}

	hc := retryablehttp.NewClient()
	hc.Logger = leveledLogger{}
	hc.RetryMax = opts.Retries
	if opts.RetryWaitMin > 0 {
		hc.RetryWaitMin = opts.RetryWaitMin
		hc.RetryWaitMax = 4 * opts.RetryWaitMin
	}
	if opts.Timeout > 0 {
		hc.HTTPClient.Timeout = opts.Timeout
	}
	// Keep the final response so failures can report status and body.
	hc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	bucket := opts.Bucket
	if bucket == "" {
		bucket = DefaultBucket
	}

	return &Client{
		http:     hc,
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
		project:  opts.Project,
		apiKey:   opts.APIKey,
		bucket:   bucket,
	}, nil
}

// FromConfig creates a Client from the catalog configuration section
func FromConfig(cfg config.Catalog) (*Client, error) {
	return New(Options{
		Endpoint: cfg.Endpoint,
		Project:  cfg.Project,
		APIKey:   cfg.APIKey,
		Bucket:   cfg.Bucket,
		Timeout:  cfg.Timeout(),
		Retries:  cfg.Retries,
	})
}

// ListThemes returns the raw document list of a collection
func (c *Client) ListThemes(ctx context.Context, database, collection string) (json.RawMessage, error) {
	body, err := c.get(ctx, "fetch themes", "databases", database, "collections", collection, "documents")
	if err != nil {
		return nil, err
	}
	return asJSON(body), nil
}

// GetTheme returns one raw theme document
func (c *Client) GetTheme(ctx context.Context, database, collection, document string) (json.RawMessage, error) {
	body, err := c.get(ctx, "get theme info", "databases", database, "collections", collection, "documents", document)
	if err != nil {
		return nil, err
	}
	return asJSON(body), nil
}

// Download returns the bytes of a bundle file
func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	return c.get(ctx, "download theme", "storage", "buckets", c.bucket, "files", fileID, "download")
}

func (c *Client) url(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.endpoint + "/" + strings.Join(escaped, "/")
}

func (c *Client) get(ctx context.Context, what string, segments ...string) ([]byte, error) {
	logger := logging.GetLogger("catalog")

	for _, s := range segments {
		if s == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "failed to %s: empty identifier", what)
		}
	}

	target := c.url(segments...)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to %s", what)
	}
	req.Header.Set(headerProject, c.project)
	if c.apiKey != "" {
		req.Header.Set(headerKey, c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug().Str("url", target).Msg("catalog request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalog, "failed to %s", what).WithDetail("url", target)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalog, "failed to read response").WithDetail("url", target)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf(errors.ErrCatalog, "failed to %s: status %d - %s",
			what, resp.StatusCode, strings.TrimSpace(string(body))).
			WithDetail("status", resp.StatusCode).
			WithDetail("url", target)
	}

	logger.Debug().Str("url", target).Int("bytes", len(body)).Msg("catalog response")
	return body, nil
}

// asJSON returns body when it is valid JSON and an empty object otherwise
func asJSON(body []byte) json.RawMessage {
	if !json.Valid(body) {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(body)
}

// leveledLogger routes retryablehttp logs into zerolog
type leveledLogger struct{}

func (leveledLogger) log(level string, msg string, keysAndValues ...interface{}) {
	logger := logging.GetLogger("catalog.http")
	event := logger.Debug()
	switch level {
	case "error":
		event = logger.Warn()
	case "debug":
		event = logger.Trace()
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		event = event.Interface(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	event.Msg(msg)
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.log("error", msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.log("warn", msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.log("info", msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.log("debug", msg, kv...) }
