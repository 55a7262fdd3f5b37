// Package swftest runs a fake SWF endpoint that records the calls it gets and
// answers with canned responses.
package swftest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pborman/uuid"
	. "github.com/sclasen/swfwire/log"
)

const (
	targetPrefix = "SimpleWorkflowService."
	contentType  = "application/x-amz-json-1.0"
	faultPrefix  = "com.amazonaws.swf.base.model#"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Call is one request received by the service.
type Call struct {
	Operation string
	Header    http.Header
	Body      []byte
	// Params is the decoded body.
	Params map[string]interface{}
}

type answer struct {
	status int
	body   []byte
}

// SWFService is a fake SWF endpoint.
type SWFService struct {
	Server *httptest.Server

	mu      sync.Mutex
	calls   []Call
	answers map[string][]answer
}

// NewSWFService starts the service, Close it when done.
func NewSWFService() *SWFService {
	service := &SWFService{answers: make(map[string][]answer)}
	service.Server = httptest.NewServer(service)
	return service
}

// URL is the endpoint of the service.
func (s *SWFService) URL() string {
	return s.Server.URL
}

// Close shuts the service down.
func (s *SWFService) Close() {
	s.Server.Close()
}

// Respond queues a 200 answer for the next call of operation. body is json
// encoded unless it is a string or []byte. Without queued answers an operation
// answers {}. The last queued answer repeats.
func (s *SWFService) Respond(operation string, body interface{}) {
	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		var err error
		if b, err = json.Marshal(v); err != nil {
			panic(err)
		}
	}
	s.enqueue(operation, answer{status: http.StatusOK, body: b})
}

// Fault queues an SWF fault answer for the next call of operation.
func (s *SWFService) Fault(operation string, status int, code, message string) {
	s.enqueue(operation, s.fault(status, code, message))
}

func (s *SWFService) enqueue(operation string, a answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[operation] = append(s.answers[operation], a)
}

// Calls returns the calls of operation in arrival order, every call for "".
func (s *SWFService) Calls(operation string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var calls []Call
	for _, c := range s.calls {
		if operation == "" || c.Operation == operation {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset forgets calls and queued answers.
func (s *SWFService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.answers = make(map[string][]answer)
}

func (s *SWFService) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("X-Amzn-Requestid", uuid.New())
	res.Header().Set("Content-Type", contentType)

	target := req.Header.Get("X-Amz-Target")
	if !strings.HasPrefix(target, targetPrefix) {
		Logf("swftest", "at=unknown-target target=%q", target)
		s.write(res, s.fault(http.StatusBadRequest, "UnknownOperationException", "unknown target "+target))
		return
	}
	operation := strings.TrimPrefix(target, targetPrefix)

	if req.Method != http.MethodPost || req.Header.Get("Content-Type") != contentType {
		Logf("swftest", "at=bad-request operation=%s method=%s", operation, req.Method)
		s.write(res, s.fault(http.StatusBadRequest, "SerializationException", "expected POST "+contentType))
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		s.write(res, s.fault(http.StatusBadRequest, "SerializationException", err.Error()))
		return
	}
	params := map[string]interface{}{}
	if err := json.Unmarshal(body, &params); err != nil {
		Logf("swftest", "at=decode-error operation=%s error=%q", operation, err)
		s.write(res, s.fault(http.StatusBadRequest, "SerializationException", err.Error()))
		return
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{Operation: operation, Header: req.Header.Clone(), Body: body, Params: params})
	a := answer{status: http.StatusOK, body: []byte("{}")}
	if queued := s.answers[operation]; len(queued) > 0 {
		a = queued[0]
		if len(queued) > 1 {
			s.answers[operation] = queued[1:]
		}
	}
	s.mu.Unlock()

	Logf("swftest", "at=call operation=%s status=%d", operation, a.status)
	s.write(res, a)
}

func (s *SWFService) fault(status int, code, message string) answer {
	b, _ := json.Marshal(map[string]string{"__type": faultPrefix + code, "message": message})
	return answer{status: status, body: b}
}

func (s *SWFService) write(res http.ResponseWriter, a answer) {
	res.WriteHeader(a.status)
	_, _ = res.Write(a.body)
}
