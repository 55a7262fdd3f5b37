package transport

import (
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigResolvesEndpoint(t *testing.T) {
	c := Config{Region: "us-east-1"}
	require.NoError(t, c.Init())
	assert.Equal(t, "https://swf.us-east-1.amazonaws.com", c.Endpoint)
	assert.Equal(t, http.DefaultClient, c.HTTPClient)
	assert.Equal(t, c.HTTPClient, c.HeartbeatHTTPClient)
	require.IsType(t, &http.Client{}, c.PollingHTTPClient)
	assert.Equal(t, PollTimeout, c.PollingHTTPClient.(*http.Client).Timeout)
}

func TestConfigValidation(t *testing.T) {
	c := Config{}
	err := c.Init()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))

	c = Config{Endpoint: "not a url"}
	assert.True(t, errors.Is(c.Validate(), errors.NotValid))

	c = Config{Endpoint: "http://localhost:8080"}
	assert.NoError(t, c.Validate())

	_, err = New(Config{})
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestConfigFromAWS(t *testing.T) {
	hc := &http.Client{}
	c := ConfigFromAWS(aws.NewConfig().WithRegion("eu-west-1").WithHTTPClient(hc))
	assert.Equal(t, "eu-west-1", c.Region)
	assert.Equal(t, "", c.Endpoint)
	assert.Equal(t, hc, c.HTTPClient)

	c = ConfigFromAWS(aws.NewConfig().WithEndpoint("http://localhost:9000"))
	assert.Equal(t, "http://localhost:9000", c.Endpoint)
	assert.Nil(t, c.HTTPClient)
}

func TestConfigFromNilAWS(t *testing.T) {
	var c Config
	assert.NotPanics(t, func() { c = ConfigFromAWS(nil) })
	assert.Equal(t, Config{}, c)
	assert.True(t, errors.Is(c.Validate(), errors.NotValid))
}
