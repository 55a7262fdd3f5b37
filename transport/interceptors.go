package transport

import "github.com/sclasen/swfwire/marshal"

//Interceptor sees every request a Client sends, and its outcome.
type Interceptor interface {
	BeforeSend(req *marshal.Request)
	AfterSend(req *marshal.Request, resp *Response)
	AfterSendFailed(req *marshal.Request, err error)
}

//FuncInterceptor is an Interceptor that you can set handler funcs on. if any are unset, they are no-ops.
type FuncInterceptor struct {
	BeforeSendFn      func(req *marshal.Request)
	AfterSendFn       func(req *marshal.Request, resp *Response)
	AfterSendFailedFn func(req *marshal.Request, err error)
}

//BeforeSend runs the BeforeSendFn if not nil
func (i *FuncInterceptor) BeforeSend(req *marshal.Request) {
	if i.BeforeSendFn != nil {
		i.BeforeSendFn(req)
	}
}

//AfterSend runs the AfterSendFn if not nil
func (i *FuncInterceptor) AfterSend(req *marshal.Request, resp *Response) {
	if i.AfterSendFn != nil {
		i.AfterSendFn(req, resp)
	}
}

//AfterSendFailed runs the AfterSendFailedFn if not nil
func (i *FuncInterceptor) AfterSendFailed(req *marshal.Request, err error) {
	if i.AfterSendFailedFn != nil {
		i.AfterSendFailedFn(req, err)
	}
}

type composedInterceptor struct {
	interceptors []Interceptor
}

//NewComposedInterceptor runs interceptors in order, nils are skipped.
func NewComposedInterceptor(interceptors ...Interceptor) Interceptor {
	c := &composedInterceptor{}
	for _, i := range interceptors {
		if i != nil {
			c.interceptors = append(c.interceptors, i)
		}
	}
	return c
}

func (c *composedInterceptor) BeforeSend(req *marshal.Request) {
	for _, i := range c.interceptors {
		i.BeforeSend(req)
	}
}

func (c *composedInterceptor) AfterSend(req *marshal.Request, resp *Response) {
	for _, i := range c.interceptors {
		i.AfterSend(req, resp)
	}
}

func (c *composedInterceptor) AfterSendFailed(req *marshal.Request, err error) {
	for _, i := range c.interceptors {
		i.AfterSendFailed(req, err)
	}
}
