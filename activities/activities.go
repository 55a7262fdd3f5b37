// Package activities resolves a set of declared activities into SWF activity
// types, and builds the decisions and registrations that use them.
//
// A Config plays the part of a class level declaration shared by every
// activity of one interface: the name prefix, a default version and the data
// converter their inputs and results go through.
package activities

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/swf"
	"github.com/juju/errors"
	"github.com/sclasen/swfwire/converter"

	// register the non default converters so their identifiers resolve
	_ "github.com/sclasen/swfwire/converter/msgpack"
	_ "github.com/sclasen/swfwire/converter/protobuf"
)

// Config is shared by every activity of one interface.
type Config struct {
	// ActivityNamePrefix is prepended to method names. Empty means "<interface>.".
	ActivityNamePrefix string
	// Version applies to activities that carry no version of their own.
	Version string
	// DataConverter is a converter identifier, empty means the default json converter.
	DataConverter string
}

// Activity declares one activity method.
type Activity struct {
	Method string
	// Name replaces the derived name entirely when set.
	Name string
	// Version overrides Config.Version.
	Version string
}

// ActivityType is a resolved activity.
type ActivityType struct {
	Name    string
	Version string
	Method  string
}

// Resolve derives the activity types of the given interface.
func (c Config) Resolve(interfaceName string, acts ...Activity) ([]ActivityType, error) {
	types := make([]ActivityType, 0, len(acts))
	seen := make(map[string]string, len(acts))
	for _, a := range acts {
		if a.Method == "" {
			return nil, errors.NotValidf("activity of %s without method", interfaceName)
		}
		t := ActivityType{Name: c.name(interfaceName, a), Version: a.Version, Method: a.Method}
		if t.Version == "" {
			t.Version = c.Version
		}
		if t.Version == "" {
			return nil, errors.NotValidf("activity %s without version", t.Name)
		}
		if m, ok := seen[t.Name]; ok {
			return nil, errors.AlreadyExistsf("activity %s of %s and %s", t.Name, m, a.Method)
		}
		seen[t.Name] = a.Method
		types = append(types, t)
	}
	return types, nil
}

func (c Config) name(interfaceName string, a Activity) string {
	if a.Name != "" {
		return a.Name
	}
	if c.ActivityNamePrefix != "" {
		return c.ActivityNamePrefix + a.Method
	}
	return interfaceName + "." + a.Method
}

// Converter resolves the configured data converter.
func (c Config) Converter() (converter.DataConverter, error) {
	dc, err := converter.Lookup(c.DataConverter)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return dc, nil
}

// ScheduleDecision builds a ScheduleActivityTask decision for t with input
// encoded by the configured converter. A nil input schedules the task with no
// input, an empty taskList leaves the registered default in place.
func (c Config) ScheduleDecision(t ActivityType, activityID, taskList string, input interface{}) (*swf.Decision, error) {
	attrs := &swf.ScheduleActivityTaskDecisionAttributes{
		ActivityId:   aws.String(activityID),
		ActivityType: t.SWF(),
	}
	if taskList != "" {
		attrs.TaskList = &swf.TaskList{Name: aws.String(taskList)}
	}
	if input != nil {
		dc, err := c.Converter()
		if err != nil {
			return nil, errors.Trace(err)
		}
		enc, err := dc.Encode(input)
		if err != nil {
			return nil, errors.Annotatef(err, "encode input of %s", t.Name)
		}
		attrs.Input = aws.String(string(enc))
	}
	return &swf.Decision{
		DecisionType:                           aws.String(swf.DecisionTypeScheduleActivityTask),
		ScheduleActivityTaskDecisionAttributes: attrs,
	}, nil
}

// SWF returns the type as an swf.ActivityType.
func (t ActivityType) SWF() *swf.ActivityType {
	return &swf.ActivityType{Name: aws.String(t.Name), Version: aws.String(t.Version)}
}

// RegisterInput builds the registration of t in domain. Defaults such as
// timeouts and the task list are copied from template, which may be nil.
func (t ActivityType) RegisterInput(domain string, template *swf.RegisterActivityTypeInput) *swf.RegisterActivityTypeInput {
	in := &swf.RegisterActivityTypeInput{}
	if template != nil {
		cp := *template
		in = &cp
	}
	in.Domain = aws.String(domain)
	in.Name = aws.String(t.Name)
	in.Version = aws.String(t.Version)
	return in
}
