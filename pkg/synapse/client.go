package synapse

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bft-labs/kalliopectl/pkg/log"
	"github.com/bft-labs/kalliopectl/pkg/settings"
)

const (
	synapsesEndpoint = "/synapses"
	runEndpoint      = "/synapses/start/id/"

	// maxErrorBody caps how much of a failed response is kept in StatusError.
	maxErrorBody = 4 << 10
)

// Client talks to the synapse endpoints of a Kalliope core API.
// It keeps no per-call state and is safe for concurrent use.
type Client struct {
	httpClient HTTPClient
	logger     log.Logger
	limiter    *rate.Limiter
	requestIDs bool
}

// New creates a Client.
func New(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		httpClient: o.httpClient,
		logger:     o.logger,
		limiter:    o.limiter,
		requestIDs: o.requestIDs,
	}
}

// ListSynapses fetches GET /synapses and maps the payload to Synapse values.
func (c *Client) ListSynapses(ctx context.Context, s settings.Settings) ([]Synapse, error) {
	body, err := c.do(ctx, http.MethodGet, synapsesEndpoint, s)
	if err != nil {
		return nil, err
	}

	synapses, err := DecodeSynapses(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("listed synapses", log.String("url", s.URL), log.Int("count", len(synapses)))
	return synapses, nil
}

// RunSynapse starts syn by name with POST /synapses/start/id/{name} and
// returns the decoded response body verbatim. No request body is sent.
func (c *Client) RunSynapse(ctx context.Context, syn Synapse, s settings.Settings) (any, error) {
	if syn.Name == "" {
		return nil, ErrEmptySynapseName
	}

	body, err := c.do(ctx, http.MethodPost, runEndpoint+url.PathEscape(syn.Name), s)
	if err != nil {
		return nil, err
	}

	var result any
	if err := sonic.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c.logger.Info("ran synapse", log.String("synapse", syn.Name), log.String("url", s.URL))
	return result, nil
}

// do sends an authenticated request without body and returns the response
// body of a 2xx answer.
func (c *Client) do(ctx context.Context, method, path string, s settings.Settings) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL()+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", BasicAuth(s.Username, s.Password))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	fields := []log.Field{log.String("method", method), log.String("path", path)}
	if c.requestIDs {
		id := uuid.NewString()
		req.Header.Set("X-Request-Id", id)
		fields = append(fields, log.String("request_id", id))
	}
	c.logger.Debug("sending request", fields...)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	fields = append(fields, log.Int("status", resp.StatusCode), log.Duration("elapsed", time.Since(start)))
	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("request failed", fields...)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug("received response", fields...)
	return body, nil
}

// BasicAuth returns the Authorization header value for the given credentials.
// Empty credentials are encoded as-is.
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
