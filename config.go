// Package admetlab2 submits compounds to a local ADMETLab2 prediction service
// and persists its JSON answer.
package admetlab2

import (
	"fmt"
	"net/url"
	"time"
)

// Config describes how to reach the prediction service.
type Config struct {
	Endpoint           string        `json:"endpoint"                       mapstructure:"endpoint"`
	Timeout            time.Duration `json:"timeout"                        mapstructure:"timeout"`
	ResponseSchemaFile string        `json:"response_schema_file,omitempty" mapstructure:"response_schema_file"`
}

// DefaultConfig returns the settings of a bare invocation.
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
	}
}

// Validate checks that the endpoint is an absolute http(s) URL and the timeout is positive.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: endpoint %q: %v", ErrInvalidConfig, c.Endpoint, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q must be an absolute http(s) URL", ErrInvalidConfig, c.Endpoint)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}

	return nil
}
