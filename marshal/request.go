package marshal

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Wire constants of the awsjson 1.0 protocol.
const (
	ContentType = "application/x-amz-json-1.0"

	HeaderTarget        = "X-Amz-Target"
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

// Request is a marshalled operation call, ready to be handed to a transport.
// It is never modified after Marshal returns it.
type Request struct {
	method string
	target string
	header http.Header
	body   []byte
}

func newRequest(d *Descriptor, body []byte) *Request {
	method := d.Method
	if method == "" {
		method = http.MethodPost
	}
	header := make(http.Header, 3)
	header.Set(HeaderTarget, d.Target)
	header.Set(HeaderContentType, ContentType)
	header.Set(HeaderContentLength, strconv.Itoa(len(body)))
	return &Request{
		method: method,
		target: d.Target,
		header: header,
		body:   body,
	}
}

// Method is the HTTP method.
func (r *Request) Method() string { return r.method }

// Target is the X-Amz-Target header value.
func (r *Request) Target() string { return r.target }

// Operation is the operation part of Target.
func (r *Request) Operation() string { return operation(r.target) }

// Header returns a copy of the request headers.
func (r *Request) Header() http.Header { return r.header.Clone() }

// ContentLength is the byte length of the body.
func (r *Request) ContentLength() int64 { return int64(len(r.body)) }

// Body returns a copy of the encoded body.
func (r *Request) Body() []byte {
	b := make([]byte, len(r.body))
	copy(b, r.body)
	return b
}

// BodyReader returns a fresh reader over the body.
func (r *Request) BodyReader() io.ReadSeeker {
	return bytes.NewReader(r.body)
}

// HTTPRequest builds an *http.Request for endpoint carrying the method, headers and body.
func (r *Request) HTTPRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, bytes.NewReader(r.body))
	if err != nil {
		return nil, errors.Trace(err)
	}
	req.Header = r.header.Clone()
	req.ContentLength = int64(len(r.body))
	return req, nil
}

func (r *Request) String() string {
	return r.method + " " + r.target + " " + string(r.body)
}

func operation(target string) string {
	if i := strings.LastIndexByte(target, '.'); i >= 0 {
		return target[i+1:]
	}
	return target
}
