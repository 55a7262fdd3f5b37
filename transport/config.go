package transport

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/service/swf"
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
)

// PollTimeout covers the 60 second SWF long poll.
const PollTimeout = 70 * time.Second

// HTTPDoer sends one HTTP request, *http.Client satisfies it.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	// Endpoint is the SWF endpoint URL. When empty it is resolved from Region.
	Endpoint string `validate:"omitempty,url"`
	Region   string `validate:"required_without=Endpoint"`

	// HTTPClient sends every call without a dedicated client, http.DefaultClient when nil.
	HTTPClient HTTPDoer `validate:"-"`
	// PollingHTTPClient sends PollForDecisionTask and PollForActivityTask. When nil
	// a client with PollTimeout is used.
	PollingHTTPClient HTTPDoer `validate:"-"`
	// HeartbeatHTTPClient sends RecordActivityTaskHeartbeat, HTTPClient when nil.
	HeartbeatHTTPClient HTTPDoer `validate:"-"`

	// Interceptor is optional.
	Interceptor Interceptor `validate:"-"`
}

var validate = validator.New()

// Validate checks the config, the error satisfies errors.Is(err, errors.NotValid).
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.NewNotValid(err, "transport config")
	}
	return nil
}

// Init validates the config and fills in the defaults.
func (c *Config) Init() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Endpoint == "" {
		resolved, err := endpoints.DefaultResolver().EndpointFor(swf.EndpointsID, c.Region)
		if err != nil {
			return errors.Annotatef(err, "resolve swf endpoint in %s", c.Region)
		}
		c.Endpoint = resolved.URL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.PollingHTTPClient == nil {
		c.PollingHTTPClient = &http.Client{Timeout: PollTimeout}
	}
	if c.HeartbeatHTTPClient == nil {
		c.HeartbeatHTTPClient = c.HTTPClient
	}
	if c.Interceptor == nil {
		c.Interceptor = &FuncInterceptor{}
	}
	return nil
}

// ConfigFromAWS maps the endpoint, region and http client of an aws-sdk-go
// config. A nil config maps to the zero Config.
func ConfigFromAWS(cfg *aws.Config) Config {
	if cfg == nil {
		return Config{}
	}
	c := Config{
		Endpoint: aws.StringValue(cfg.Endpoint),
		Region:   aws.StringValue(cfg.Region),
	}
	if cfg.HTTPClient != nil {
		c.HTTPClient = cfg.HTTPClient
	}
	return c
}
