package prismic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
	"github.com/tawa-digital/tawa-content/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ContentSource = (*Client)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// TokenType is the authorization scheme Prismic expects.
	TokenType = "Token"

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512

	searchPath = "/documents/search"
)

// Config holds everything needed to reach one Prismic repository.
type Config struct {
	// APIURL is the API root, e.g. https://repo.cdn.prismic.io/api/v2.
	APIURL string

	// Token is the optional access token for private repositories.
	Token string

	// Locale is sent as lang on queries that do not set one.
	Locale string

	// RequestsPerSecond throttles outgoing requests; zero disables it.
	RequestsPerSecond float64

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Retry configures retries of transient failures.
	Retry RetryPolicy
}

// ConfigFromSettings builds a client configuration from application settings.
func ConfigFromSettings(s domain.Settings) Config {
	return Config{
		APIURL:            s.Prismic.APIURL(),
		Token:             s.Prismic.Token,
		Locale:            s.Prismic.Locale,
		RequestsPerSecond: s.Prismic.RequestsPerSecond,
		Timeout:           s.Prismic.Timeout(),
		Retry: RetryPolicy{
			MaxAttempts:  s.Retry.MaxAttempts,
			InitialDelay: s.Retry.InitialDelay(),
		},
	}
}

// Client is a Prismic REST API v2 content source.
// It is safe for concurrent use.
type Client struct {
	cfg         Config
	http        *http.Client
	rateLimiter *RateLimiter
	log         logger.Scope

	mu  sync.Mutex
	ref string
}

// NewClient creates a new Prismic client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: cfg.Token,
				TokenType:   TokenType,
			}),
			Base: transport,
		}
	}

	return &Client{
		cfg:         cfg,
		http:        &http.Client{Transport: transport, Timeout: cfg.Timeout},
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
		log:         logger.For("prismic"),
	}
}

// SetHTTPClient replaces the HTTP client. Its transport is used as is, so
// the caller is responsible for authentication headers.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.http = hc
}

// apiRoot is the subset of the API root response the client needs.
type apiRoot struct {
	Refs []struct {
		ID          string `json:"id"`
		Ref         string `json:"ref"`
		Label       string `json:"label"`
		IsMasterRef bool   `json:"isMasterRef"`
	} `json:"refs"`
}

// searchResponse is the search endpoint response.
type searchResponse struct {
	Page             int               `json:"page"`
	ResultsPerPage   int               `json:"results_per_page"`
	TotalResultsSize int               `json:"total_results_size"`
	TotalPages       int               `json:"total_pages"`
	Results          []domain.Document `json:"results"`
}

// MasterRef returns the cached master ref, reading it from the API root
// on first use.
func (c *Client) MasterRef(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ref != "" {
		return c.ref, nil
	}

	var root apiRoot
	if err := c.get(ctx, c.cfg.APIURL, url.Values{}, &root); err != nil {
		return "", fmt.Errorf("read api root: %w", err)
	}
	for _, r := range root.Refs {
		if r.IsMasterRef {
			c.ref = r.Ref
			c.log.Debug("master ref %s", r.Ref)
			return c.ref, nil
		}
	}
	return "", ErrNoMasterRef
}

// invalidateRef drops a cached ref that the API no longer accepts.
func (c *Client) invalidateRef(ref string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ref == ref {
		c.ref = ""
	}
}

// Query returns one page of documents matching every predicate.
func (c *Client) Query(ctx context.Context, q domain.Query) (*domain.QueryResult, error) {
	res, err := c.search(ctx, q)
	if err != nil {
		return nil, err
	}
	results := res.Results
	if results == nil {
		results = []domain.Document{}
	}
	return &domain.QueryResult{
		Page:             res.Page,
		ResultsPerPage:   res.ResultsPerPage,
		TotalResultsSize: res.TotalResultsSize,
		TotalPages:       res.TotalPages,
		Results:          results,
	}, nil
}

// GetSingle returns the document of a singleton type.
func (c *Client) GetSingle(ctx context.Context, docType domain.DocumentType) (*domain.Document, error) {
	return c.first(ctx, domain.Query{
		Predicates: []domain.Predicate{domain.TypeIs(docType)},
		PageSize:   1,
	}, docType.String())
}

// GetByUID returns the document of docType with the given UID.
func (c *Client) GetByUID(ctx context.Context, docType domain.DocumentType, uid string) (*domain.Document, error) {
	return c.first(ctx, domain.Query{
		Predicates: []domain.Predicate{domain.At(domain.FieldPath(docType, "uid"), uid)},
		PageSize:   1,
	}, fmt.Sprintf("%s %q", docType, uid))
}

// GetByIDs fetches documents by ID in batches of one page each.
func (c *Client) GetByIDs(ctx context.Context, ids []string) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(ids))
	for start := 0; start < len(ids); start += domain.DefaultPageSize {
		end := min(start+domain.DefaultPageSize, len(ids))
		res, err := c.search(ctx, domain.Query{
			Predicates: []domain.Predicate{domain.In(domain.PathDocumentID, ids[start:end]...)},
			PageSize:   domain.DefaultPageSize,
		})
		if err != nil {
			return nil, err
		}
		docs = append(docs, res.Results...)
	}
	return docs, nil
}

func (c *Client) first(ctx context.Context, q domain.Query, what string) (*domain.Document, error) {
	res, err := c.search(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(res.Results) == 0 {
		return nil, fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return &res.Results[0], nil
}

// search runs q against the master ref, refreshing the ref once if the API
// no longer knows it.
func (c *Client) search(ctx context.Context, q domain.Query) (*searchResponse, error) {
	for refreshed := false; ; refreshed = true {
		ref, err := c.MasterRef(ctx)
		if err != nil {
			return nil, err
		}
		params, err := searchParams(q, ref, c.cfg.Locale)
		if err != nil {
			return nil, err
		}

		c.log.Debug("search q=%s orderings=%s page=%s", params.Get(paramQ), params.Get(paramOrderings), params.Get(paramPage))

		var res searchResponse
		err = c.get(ctx, c.cfg.APIURL+searchPath, params, &res)
		if err == nil {
			c.log.Debug("search returned %d of %d", len(res.Results), res.TotalResultsSize)
			return &res, nil
		}
		if refreshed || !IsNotFound(err) {
			return nil, err
		}
		c.log.Info("ref %s rejected, refreshing", ref)
		c.invalidateRef(ref)
	}
}

// get performs a throttled, retried GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.cfg.Token != "" {
		params.Set(paramAccessToken, c.cfg.Token)
	}
	target := endpoint + "?" + params.Encode()

	return retry(ctx, c.cfg.Retry, c.log, func() error {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &transportError{err: err}
		}
		defer resp.Body.Close()

		if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
			return err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    errorMessage(body, resp.Status),
				URL:        redact(endpoint),
			}
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s: %w", redact(endpoint), errors.Join(err, domain.ErrSourceUnavailable))
		}
		return nil
	})
}

// errorMessage extracts the message of a Prismic error body.
func errorMessage(body []byte, status string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return status
}

// redact drops the query string so tokens never reach logs or errors.
func redact(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	u.RawQuery = ""
	return u.String()
}
