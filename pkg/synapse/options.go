package synapse

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bft-labs/kalliopectl/pkg/log"
)

// DefaultTimeout bounds every request made with the default transport.
const DefaultTimeout = 15 * time.Second

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	httpClient HTTPClient
	logger     log.Logger
	limiter    *rate.Limiter
	requestIDs bool
}

func defaultOptions() options {
	return options{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     log.NewNoopLogger(),
		requestIDs: true,
	}
}

// WithHTTPClient sets the transport used for every request.
// If not provided, an *http.Client with DefaultTimeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout replaces the default transport with an *http.Client using
// the given timeout. It has no effect on a client set with WithHTTPClient
// if WithHTTPClient is applied afterwards.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger. If not provided, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRateLimiter makes every call wait on l before sending.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

// WithRequestIDs controls the X-Request-Id header. Enabled by default.
func WithRequestIDs(enabled bool) Option {
	return func(o *options) {
		o.requestIDs = enabled
	}
}
