package admetlab2

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ClientOptions defines the configuration for a Client.
type ClientOptions struct {
	endpoint       string
	timeout        time.Duration
	logger         zerolog.Logger
	httpClient     *http.Client
	responseSchema string
}

// ClientOption configures a Client.
type ClientOption func(*ClientOptions)

// WithEndpoint sets the URL the compound is posted to.
func WithEndpoint(endpoint string) ClientOption {
	return func(o *ClientOptions) {
		o.endpoint = endpoint
	}
}

// WithTimeout bounds the whole request, including reading the body.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *ClientOptions) {
		o.timeout = timeout
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(o *ClientOptions) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(o *ClientOptions) {
		o.httpClient = hc
	}
}

// WithResponseSchema enables JSON schema validation of service responses.
// An empty schema leaves responses unchecked.
func WithResponseSchema(schema string) ClientOption {
	return func(o *ClientOptions) {
		o.responseSchema = schema
	}
}

// WithConfig applies endpoint and timeout from cfg.
func WithConfig(cfg Config) ClientOption {
	return func(o *ClientOptions) {
		o.endpoint = cfg.Endpoint
		o.timeout = cfg.Timeout
	}
}

func defaultClientOptions() ClientOptions {
	return ClientOptions{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
		logger:   zerolog.Nop(),
	}
}

func resolveClientOptions(opts []ClientOption) ClientOptions {
	out := defaultClientOptions()
	for _, opt := range opts {
		opt(&out)
	}

	return out
}
