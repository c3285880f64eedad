package admetlab2

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

// Response is the service answer, kept as raw JSON.
type Response = json.RawMessage

// Submitter sends a compound to the prediction service.
type Submitter interface {
	Submit(ctx context.Context, compound string) (Response, error)
}

// Client posts compounds to a single prediction endpoint.
type Client struct {
	endpoint string
	http     *resty.Client
	schema   *gojsonschema.Schema
	log      zerolog.Logger
}

// NewClient constructs a client. Without options it targets DefaultEndpoint
// with DefaultTimeout.
func NewClient(opts ...ClientOption) (*Client, error) {
	o := resolveClientOptions(opts)

	cfg := Config{Endpoint: o.endpoint, Timeout: o.timeout}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var schema *gojsonschema.Schema
	if o.responseSchema != "" {
		var err error

		schema, err = compileSchema(o.responseSchema)
		if err != nil {
			return nil, err
		}
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetTimeout(o.timeout).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: o.logger})

	return &Client{
		endpoint: o.endpoint,
		http:     rc,
		schema:   schema,
		log:      o.logger,
	}, nil
}

// Endpoint returns the URL compounds are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts the compound and returns the response body verbatim. Every
// failure is tagged KindService.
func (c *Client) Submit(ctx context.Context, compound string) (Response, error) {
	start := time.Now()

	c.log.Debug().
		Str("endpoint", c.endpoint).
		Int("compound_len", len(compound)).
		Msg("submitting compound")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(Request{Compound: compound}).
		Post(c.endpoint)
	if err != nil {
		c.log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("service call failed")

		return nil, serviceError(err)
	}

	c.log.Debug().
		Int("status", resp.StatusCode()).
		Int("body_len", len(resp.Body())).
		Dur("elapsed", time.Since(start)).
		Msg("service responded")

	if !resp.IsSuccess() {
		return nil, serviceError(fmt.Errorf("%w: %s for url: %s", ErrServiceStatus, resp.Status(), c.endpoint))
	}

	body := resp.Body()
	if !ValidResponse(body) {
		return nil, serviceError(fmt.Errorf("%w: %d bytes", ErrInvalidResponse, len(body)))
	}

	if c.schema != nil {
		if err := validateResponse(c.schema, body); err != nil {
			return nil, serviceError(err)
		}
	}

	out := make(Response, len(body))
	copy(out, body)

	return out, nil
}

type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
