package swftest

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/service/swf"
	"github.com/sclasen/swfwire/operations"
	. "github.com/sclasen/swfwire/sugar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, service *SWFService, in *swf.ListDomainsInput) (*http.Response, string) {
	req, err := operations.ListDomains.Marshal(in)
	require.NoError(t, err)
	hr, err := req.HTTPRequest(context.Background(), service.URL())
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(hr)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestSWFServiceRecordsCalls(t *testing.T) {
	service := NewSWFService()
	defer service.Close()

	resp, body := send(t, service, &swf.ListDomainsInput{RegistrationStatus: S(swf.RegistrationStatusRegistered)})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "{}", body)
	assert.NotEmpty(t, resp.Header.Get("X-Amzn-Requestid"))

	calls := service.Calls("ListDomains")
	require.Len(t, calls, 1)
	assert.Equal(t, `{"registrationStatus":"REGISTERED"}`, string(calls[0].Body))
	assert.Equal(t, "REGISTERED", calls[0].Params["registrationStatus"])
	assert.Equal(t, "SimpleWorkflowService.ListDomains", calls[0].Header.Get("X-Amz-Target"))
	assert.Empty(t, service.Calls("DescribeDomain"))
	assert.Len(t, service.Calls(""), 1)
}

func TestSWFServiceAnswers(t *testing.T) {
	service := NewSWFService()
	defer service.Close()

	service.Respond("ListDomains", map[string]interface{}{"domainInfos": []interface{}{}})
	service.Fault("ListDomains", http.StatusBadRequest, "OperationNotPermittedFault", "nope")

	_, body := send(t, service, &swf.ListDomainsInput{})
	assert.Equal(t, `{"domainInfos":[]}`, body)

	resp, body := send(t, service, &swf.ListDomainsInput{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `"__type":"com.amazonaws.swf.base.model#OperationNotPermittedFault"`)

	// the last answer repeats
	resp, _ = send(t, service, &swf.ListDomainsInput{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	service.Reset()
	assert.Empty(t, service.Calls(""))
	resp, _ = send(t, service, &swf.ListDomainsInput{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSWFServiceRejectsBadRequests(t *testing.T) {
	service := NewSWFService()
	defer service.Close()

	resp, err := http.Post(service.URL(), "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	hr, err := http.NewRequest(http.MethodPost, service.URL(), strings.NewReader("not json"))
	require.NoError(t, err)
	hr.Header.Set("X-Amz-Target", "SimpleWorkflowService.ListDomains")
	hr.Header.Set("Content-Type", "application/x-amz-json-1.0")
	resp, err = http.DefaultClient.Do(hr)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, service.Calls(""))
}
