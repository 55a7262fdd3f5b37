// Package transport sends marshalled SWF requests over HTTP and turns SWF
// fault responses into awserr.RequestFailure errors.
//
// It neither signs nor retries requests.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/private/protocol/json/jsonutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/juju/errors"
	. "github.com/sclasen/swfwire/log"
	"github.com/sclasen/swfwire/marshal"
)

// HeaderRequestID carries the SWF request id.
const HeaderRequestID = "X-Amzn-Requestid"

// ErrCodeRequestError is the code of errors raised before SWF answered.
const ErrCodeRequestError = "RequestError"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is a successful SWF answer.
type Response struct {
	StatusCode int
	RequestID  string
	Body       []byte
}

// Decode unmarshals the response body into v. aws-sdk-go output shapes such
// as *swf.DescribeWorkflowTypeOutput are decoded the way the sdk does, epoch
// timestamps included. Anything else goes through plain json.
func (r *Response) Decode(v interface{}) error {
	if isShape(v) {
		return errors.Trace(jsonutil.UnmarshalJSON(v, bytes.NewReader(r.Body)))
	}
	return errors.Trace(json.Unmarshal(r.Body, v))
}

// sdk shapes carry a `_ struct{} type:"structure"` marker field
func isShape(v interface{}) bool {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return false
	}
	f, ok := t.Elem().FieldByName("_")
	return ok && f.Tag.Get("type") == "structure"
}

// Client sends requests to one SWF endpoint. It is safe for concurrent use.
type Client struct {
	endpoint    string
	http        HTTPDoer
	polling     HTTPDoer
	heartbeat   HTTPDoer
	interceptor Interceptor
}

// New builds a client, see Config.Init for the defaults.
func New(cfg Config) (*Client, error) {
	if err := cfg.Init(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Client{
		endpoint:    cfg.Endpoint,
		http:        cfg.HTTPClient,
		polling:     cfg.PollingHTTPClient,
		heartbeat:   cfg.HeartbeatHTTPClient,
		interceptor: cfg.Interceptor,
	}, nil
}

// Endpoint is the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Invoke marshals input with d and sends it.
func (c *Client) Invoke(ctx context.Context, d *marshal.Descriptor, input interface{}) (*Response, error) {
	req, err := marshal.Marshal(d, input)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return c.Send(ctx, req)
}

// Send posts req. Answers outside 2xx come back as an awserr.RequestFailure
// carrying the SWF fault code, failures to reach SWF as an awserr.Error with
// code RequestError.
func (c *Client) Send(ctx context.Context, req *marshal.Request) (*Response, error) {
	c.interceptor.BeforeSend(req)
	resp, err := c.send(ctx, req)
	if err != nil {
		c.interceptor.AfterSendFailed(req, err)
		return nil, err
	}
	c.interceptor.AfterSend(req, resp)
	return resp, nil
}

func (c *Client) send(ctx context.Context, req *marshal.Request) (*Response, error) {
	op := req.Operation()
	hr, err := req.HTTPRequest(ctx, c.endpoint)
	if err != nil {
		return nil, errors.Trace(err)
	}

	resp, err := c.clientFor(op).Do(hr)
	if err != nil {
		Logf("transport", "at=send-error operation=%s error=%q", op, err)
		return nil, awserr.New(ErrCodeRequestError, "send request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		Logf("transport", "at=read-error operation=%s error=%q", op, err)
		return nil, awserr.New(ErrCodeRequestError, "read response failed", err)
	}

	requestID := resp.Header.Get(HeaderRequestID)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fault := decodeFault(resp.StatusCode, body)
		Logf("transport", "at=fault operation=%s status=%d code=%s request-id=%s", op, resp.StatusCode, fault.Code(), requestID)
		return nil, awserr.NewRequestFailure(fault, resp.StatusCode, requestID)
	}

	Logf("transport", "at=sent operation=%s status=%d request-id=%s", op, resp.StatusCode, requestID)
	return &Response{StatusCode: resp.StatusCode, RequestID: requestID, Body: body}, nil
}

//different http clients for timeouts on polling and heartbeating.
func (c *Client) clientFor(operation string) HTTPDoer {
	switch operation {
	case "PollForDecisionTask", "PollForActivityTask":
		return c.polling
	case "RecordActivityTaskHeartbeat":
		return c.heartbeat
	}
	return c.http
}

// Message matches "Message" as well, json keys match case insensitively.
type faultBody struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

func decodeFault(status int, body []byte) awserr.Error {
	var f faultBody
	if err := json.Unmarshal(body, &f); err != nil || f.Type == "" {
		return awserr.New(strings.ReplaceAll(http.StatusText(status), " ", ""), string(body), err)
	}
	code := f.Type
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return awserr.New(code, f.Message, nil)
}
