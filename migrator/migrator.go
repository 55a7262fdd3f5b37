// Package migrator brings SWF domains, workflow types and activity types to a
// declared state, registering and deprecating them as required.
package migrator

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/swf"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/errors"
	. "github.com/sclasen/swfwire/log"
	"github.com/sclasen/swfwire/marshal"
	"github.com/sclasen/swfwire/operations"
	. "github.com/sclasen/swfwire/sugar"
	"github.com/sclasen/swfwire/transport"
)

// Invoker sends one SWF operation, *transport.Client satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, d *marshal.Descriptor, input interface{}) (*transport.Response, error)
}

// TypesMigrator is composed of a DomainMigrator, a WorkflowTypeMigrator and an ActivityTypeMigrator.
type TypesMigrator struct {
	DomainMigrator       *DomainMigrator
	WorkflowTypeMigrator *WorkflowTypeMigrator
	ActivityTypeMigrator *ActivityTypeMigrator
}

// Migrate runs the DomainMigrator, then the WorkflowTypeMigrator and ActivityTypeMigrator in parallel.
func (t *TypesMigrator) Migrate(ctx context.Context) error {
	if t.ActivityTypeMigrator == nil {
		t.ActivityTypeMigrator = new(ActivityTypeMigrator)
	}
	if t.DomainMigrator == nil {
		t.DomainMigrator = new(DomainMigrator)
	}
	if t.WorkflowTypeMigrator == nil {
		t.WorkflowTypeMigrator = new(WorkflowTypeMigrator)
	}

	if err := t.DomainMigrator.Migrate(ctx); err != nil {
		return errors.Annotate(err, "migrate domains")
	}
	return ParallelMigrate(ctx,
		t.WorkflowTypeMigrator.Migrate,
		t.ActivityTypeMigrator.Migrate,
	)
}

// ParallelMigrate runs migrators concurrently and waits for all of them. Every
// failure, panics included, ends up in the returned *multierror.Error.
func ParallelMigrate(ctx context.Context, migrators ...func(context.Context) error) error {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result *multierror.Error
	)
	for _, migrator := range migrators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := run(ctx, migrator)
			if err != nil {
				mu.Lock()
				result = multierror.Append(result, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return result.ErrorOrNil()
}

func run(ctx context.Context, migrator func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("migrator failed: %v", r)
		}
	}()
	return migrator(ctx)
}

// status of a domain or type as returned by the Describe operations.
type description struct {
	DomainInfo struct {
		Status string `json:"status"`
	} `json:"domainInfo"`
	TypeInfo struct {
		Status string `json:"status"`
	} `json:"typeInfo"`
}

func (d description) status() string {
	if d.DomainInfo.Status != "" {
		return d.DomainInfo.Status
	}
	return d.TypeInfo.Status
}

// describe returns "" with no error for unknown resources.
func describe(ctx context.Context, client Invoker, d *marshal.Descriptor, input interface{}) (string, error) {
	resp, err := client.Invoke(ctx, d, input)
	if err != nil {
		if Code(err) == ErrorTypeUnknownResourceFault {
			return "", nil
		}
		return "", errorFor(err)
	}
	var desc description
	if err := resp.Decode(&desc); err != nil {
		return "", errors.Annotatef(err, "decode %s", d.Operation())
	}
	return desc.status(), nil
}

// invoke tolerates the listed fault codes.
func invoke(ctx context.Context, client Invoker, d *marshal.Descriptor, input interface{}, tolerated ...string) error {
	_, err := client.Invoke(ctx, d, input)
	if err == nil {
		return nil
	}
	code := Code(err)
	for _, t := range tolerated {
		if code == t {
			return nil
		}
	}
	return errorFor(err)
}

func errorFor(err error) error {
	if ae, ok := err.(awserr.RequestFailure); ok {
		return errors.Annotatef(err, "aws error while migrating code=%s message=%s status=%d request-id=%s",
			ae.Code(), ae.Message(), ae.StatusCode(), ae.RequestID())
	}
	return errors.Trace(err)
}

// DomainMigrator will register or deprecate the configured domains as required.
type DomainMigrator struct {
	RegisteredDomains []swf.RegisterDomainInput
	DeprecatedDomains []swf.DeprecateDomainInput
	Client            Invoker
}

// Migrate asserts that DeprecatedDomains are deprecated or deprecates them, then asserts that RegisteredDomains are registered or registers them.
func (d *DomainMigrator) Migrate(ctx context.Context) error {
	for _, dd := range d.DeprecatedDomains {
		status, err := describe(ctx, d.Client, operations.DescribeDomain, &swf.DescribeDomainInput{Name: dd.Name})
		if err != nil {
			Logf("migrator", "at=is-dep domain=%s error=%q", LS(dd.Name), err)
		}
		if status == swf.RegistrationStatusDeprecated {
			Logf("migrator", "at=deprecate-domain domain=%s status=previously-deprecated", LS(dd.Name))
			continue
		}
		if err := invoke(ctx, d.Client, operations.DeprecateDomain, &dd, ErrorTypeDomainDeprecatedFault); err != nil {
			return errors.Annotatef(err, "deprecate domain %s", LS(dd.Name))
		}
		Logf("migrator", "at=deprecate-domain domain=%s status=deprecated", LS(dd.Name))
	}
	for _, r := range d.RegisteredDomains {
		status, err := describe(ctx, d.Client, operations.DescribeDomain, &swf.DescribeDomainInput{Name: r.Name})
		if err != nil {
			return errors.Annotatef(err, "describe domain %s", LS(r.Name))
		}
		if status == swf.RegistrationStatusRegistered {
			Logf("migrator", "at=register-domain domain=%s status=previously-registered", LS(r.Name))
			continue
		}
		if err := invoke(ctx, d.Client, operations.RegisterDomain, &r, ErrorTypeDomainAlreadyExistsFault); err != nil {
			return errors.Annotatef(err, "register domain %s", LS(r.Name))
		}
		Logf("migrator", "at=register-domain domain=%s status=registered", LS(r.Name))
	}
	return nil
}

// WorkflowTypeMigrator will register or deprecate the configured workflow types as required.
type WorkflowTypeMigrator struct {
	RegisteredWorkflowTypes []swf.RegisterWorkflowTypeInput
	DeprecatedWorkflowTypes []swf.DeprecateWorkflowTypeInput
	Client                  Invoker
}

// Migrate asserts that DeprecatedWorkflowTypes are deprecated or deprecates them, then asserts that RegisteredWorkflowTypes are registered or registers them.
func (w *WorkflowTypeMigrator) Migrate(ctx context.Context) error {
	for _, dd := range w.DeprecatedWorkflowTypes {
		if dd.WorkflowType == nil {
			return errors.NotValidf("deprecated workflow type without WorkflowType in %s", LS(dd.Domain))
		}
		name, version := LS(dd.WorkflowType.Name), LS(dd.WorkflowType.Version)
		status, err := describe(ctx, w.Client, operations.DescribeWorkflowType, &swf.DescribeWorkflowTypeInput{Domain: dd.Domain, WorkflowType: dd.WorkflowType})
		if err != nil {
			Logf("migrator", "at=is-dep domain=%s workflow=%s version=%s error=%q", LS(dd.Domain), name, version, err)
		}
		if status == swf.RegistrationStatusDeprecated {
			Logf("migrator", "at=deprecate-workflow domain=%s workflow=%s version=%s status=previously-deprecated", LS(dd.Domain), name, version)
			continue
		}
		if err := invoke(ctx, w.Client, operations.DeprecateWorkflowType, &dd, ErrorTypeDeprecatedFault); err != nil {
			return errors.Annotatef(err, "deprecate workflow %s %s", name, version)
		}
		Logf("migrator", "at=deprecate-workflow domain=%s workflow=%s version=%s status=deprecated", LS(dd.Domain), name, version)
	}
	for _, r := range w.RegisteredWorkflowTypes {
		status, err := describe(ctx, w.Client, operations.DescribeWorkflowType, &swf.DescribeWorkflowTypeInput{
			Domain:       r.Domain,
			WorkflowType: &swf.WorkflowType{Name: r.Name, Version: r.Version},
		})
		if err != nil {
			return errors.Annotatef(err, "describe workflow %s %s", LS(r.Name), LS(r.Version))
		}
		if status == swf.RegistrationStatusRegistered {
			Logf("migrator", "at=register-workflow domain=%s workflow=%s version=%s status=previously-registered", LS(r.Domain), LS(r.Name), LS(r.Version))
			continue
		}
		if err := invoke(ctx, w.Client, operations.RegisterWorkflowType, &r, ErrorTypeAlreadyExistsFault); err != nil {
			return errors.Annotatef(err, "register workflow %s %s", LS(r.Name), LS(r.Version))
		}
		Logf("migrator", "at=register-workflow domain=%s workflow=%s version=%s status=registered", LS(r.Domain), LS(r.Name), LS(r.Version))
	}
	return nil
}

// ActivityTypeMigrator will register or deprecate the configured activity types as required.
type ActivityTypeMigrator struct {
	RegisteredActivityTypes []swf.RegisterActivityTypeInput
	DeprecatedActivityTypes []swf.DeprecateActivityTypeInput
	Client                  Invoker
}

// Migrate asserts that DeprecatedActivityTypes are deprecated or deprecates them, then asserts that RegisteredActivityTypes are registered or registers them.
func (a *ActivityTypeMigrator) Migrate(ctx context.Context) error {
	for _, d := range a.DeprecatedActivityTypes {
		if d.ActivityType == nil {
			return errors.NotValidf("deprecated activity type without ActivityType in %s", LS(d.Domain))
		}
		name, version := LS(d.ActivityType.Name), LS(d.ActivityType.Version)
		status, err := describe(ctx, a.Client, operations.DescribeActivityType, &swf.DescribeActivityTypeInput{Domain: d.Domain, ActivityType: d.ActivityType})
		if err != nil {
			Logf("migrator", "at=is-dep domain=%s activity=%s version=%s error=%q", LS(d.Domain), name, version, err)
		}
		if status == swf.RegistrationStatusDeprecated {
			Logf("migrator", "at=deprecate-activity domain=%s activity=%s version=%s status=previously-deprecated", LS(d.Domain), name, version)
			continue
		}
		if err := invoke(ctx, a.Client, operations.DeprecateActivityType, &d, ErrorTypeDeprecatedFault); err != nil {
			return errors.Annotatef(err, "deprecate activity %s %s", name, version)
		}
		Logf("migrator", "at=deprecate-activity domain=%s activity=%s version=%s status=deprecated", LS(d.Domain), name, version)
	}
	for _, r := range a.RegisteredActivityTypes {
		status, err := describe(ctx, a.Client, operations.DescribeActivityType, &swf.DescribeActivityTypeInput{
			Domain:       r.Domain,
			ActivityType: &swf.ActivityType{Name: r.Name, Version: r.Version},
		})
		if err != nil {
			return errors.Annotatef(err, "describe activity %s %s", LS(r.Name), LS(r.Version))
		}
		if status == swf.RegistrationStatusRegistered {
			Logf("migrator", "at=register-activity domain=%s activity=%s version=%s status=previously-registered", LS(r.Domain), LS(r.Name), LS(r.Version))
			continue
		}
		if err := invoke(ctx, a.Client, operations.RegisterActivityType, &r, ErrorTypeAlreadyExistsFault); err != nil {
			return errors.Annotatef(err, "register activity %s %s", LS(r.Name), LS(r.Version))
		}
		Logf("migrator", "at=register-activity domain=%s activity=%s version=%s status=registered", LS(r.Domain), LS(r.Name), LS(r.Version))
	}
	return nil
}
