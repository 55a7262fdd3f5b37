package migrator

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/service/swf"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/errors"
	. "github.com/sclasen/swfwire/sugar"
	"github.com/sclasen/swfwire/swftest"
	"github.com/sclasen/swfwire/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*swftest.SWFService, *transport.Client) {
	service := swftest.NewSWFService()
	t.Cleanup(service.Close)
	client, err := transport.New(transport.Config{Endpoint: service.URL()})
	require.NoError(t, err)
	return service, client
}

func domainStatus(status string) map[string]interface{} {
	return map[string]interface{}{"domainInfo": map[string]interface{}{"name": "prod", "status": status}}
}

func typeStatus(status string) map[string]interface{} {
	return map[string]interface{}{"typeInfo": map[string]interface{}{"status": status}}
}

func registerProd() swf.RegisterDomainInput {
	return swf.RegisterDomainInput{
		Name:                                   S("prod"),
		Description:                            S("test domain"),
		WorkflowExecutionRetentionPeriodInDays: S("30"),
	}
}

func TestMigrateDomainsRegistersUnknown(t *testing.T) {
	service, client := setup(t)
	service.Fault("DescribeDomain", 400, ErrorTypeUnknownResourceFault, "unknown domain")

	d := DomainMigrator{RegisteredDomains: []swf.RegisterDomainInput{registerProd()}, Client: client}
	require.NoError(t, d.Migrate(context.Background()))

	calls := service.Calls("RegisterDomain")
	require.Len(t, calls, 1)
	assert.Equal(t, `{"name":"prod","description":"test domain","workflowExecutionRetentionPeriodInDays":"30"}`, string(calls[0].Body))
	assert.Equal(t, `{"name":"prod"}`, string(service.Calls("DescribeDomain")[0].Body))
}

func TestMigrateDomainsSkipsRegistered(t *testing.T) {
	service, client := setup(t)
	service.Respond("DescribeDomain", domainStatus(swf.RegistrationStatusRegistered))

	d := DomainMigrator{RegisteredDomains: []swf.RegisterDomainInput{registerProd()}, Client: client}
	require.NoError(t, d.Migrate(context.Background()))
	require.NoError(t, d.Migrate(context.Background()))

	assert.Empty(t, service.Calls("RegisterDomain"))
	assert.Len(t, service.Calls("DescribeDomain"), 2)
}

func TestMigrateDomainsToleratesAlreadyExists(t *testing.T) {
	service, client := setup(t)
	service.Respond("DescribeDomain", domainStatus(swf.RegistrationStatusDeprecated))
	service.Fault("RegisterDomain", 400, ErrorTypeDomainAlreadyExistsFault, "exists")

	d := DomainMigrator{RegisteredDomains: []swf.RegisterDomainInput{registerProd()}, Client: client}
	assert.NoError(t, d.Migrate(context.Background()))
	assert.Len(t, service.Calls("RegisterDomain"), 1)
}

func TestMigrateDomainsFails(t *testing.T) {
	service, client := setup(t)
	service.Fault("DescribeDomain", 400, ErrorTypeUnknownResourceFault, "unknown domain")
	service.Fault("RegisterDomain", 400, ErrorTypeLimitExceededFault, "too many")

	d := DomainMigrator{RegisteredDomains: []swf.RegisterDomainInput{registerProd()}, Client: client}
	err := d.Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register domain prod")
	assert.Contains(t, err.Error(), ErrorTypeLimitExceededFault)
}

func TestMigrateDomainsDeprecates(t *testing.T) {
	service, client := setup(t)
	service.Respond("DescribeDomain", domainStatus(swf.RegistrationStatusRegistered))
	service.Respond("DescribeDomain", domainStatus(swf.RegistrationStatusDeprecated))

	d := DomainMigrator{DeprecatedDomains: []swf.DeprecateDomainInput{{Name: S("prod")}}, Client: client}
	require.NoError(t, d.Migrate(context.Background()))
	require.NoError(t, d.Migrate(context.Background()))

	calls := service.Calls("DeprecateDomain")
	require.Len(t, calls, 1)
	assert.Equal(t, `{"name":"prod"}`, string(calls[0].Body))
}

func TestMigrateWorkflowTypes(t *testing.T) {
	service, client := setup(t)
	service.Fault("DescribeWorkflowType", 400, ErrorTypeUnknownResourceFault, "unknown type")

	w := WorkflowTypeMigrator{
		RegisteredWorkflowTypes: []swf.RegisterWorkflowTypeInput{{
			Domain:  S("prod"),
			Name:    S("order"),
			Version: S("1"),
		}},
		Client: client,
	}
	require.NoError(t, w.Migrate(context.Background()))

	assert.Equal(t, `{"domain":"prod","workflowType":{"name":"order","version":"1"}}`, string(service.Calls("DescribeWorkflowType")[0].Body))
	calls := service.Calls("RegisterWorkflowType")
	require.Len(t, calls, 1)
	assert.Equal(t, `{"domain":"prod","name":"order","version":"1"}`, string(calls[0].Body))
}

func TestMigrateWorkflowTypesDeprecates(t *testing.T) {
	service, client := setup(t)
	service.Respond("DescribeWorkflowType", typeStatus(swf.RegistrationStatusRegistered))
	service.Fault("DeprecateWorkflowType", 400, ErrorTypeDeprecatedFault, "already deprecated")

	w := WorkflowTypeMigrator{
		DeprecatedWorkflowTypes: []swf.DeprecateWorkflowTypeInput{{
			Domain:       S("prod"),
			WorkflowType: &swf.WorkflowType{Name: S("order"), Version: S("1")},
		}},
		Client: client,
	}
	require.NoError(t, w.Migrate(context.Background()))
	assert.Len(t, service.Calls("DeprecateWorkflowType"), 1)

	w.DeprecatedWorkflowTypes[0].WorkflowType = nil
	assert.True(t, errors.Is(w.Migrate(context.Background()), errors.NotValid))
}

func TestMigrateActivityTypes(t *testing.T) {
	service, client := setup(t)
	service.Respond("DescribeActivityType", typeStatus(swf.RegistrationStatusRegistered))
	service.Respond("DescribeActivityType", typeStatus(swf.RegistrationStatusDeprecated))

	a := ActivityTypeMigrator{
		RegisteredActivityTypes: []swf.RegisterActivityTypeInput{{Domain: S("prod"), Name: S("Billing.charge"), Version: S("1.0")}},
		DeprecatedActivityTypes: []swf.DeprecateActivityTypeInput{{
			Domain:       S("prod"),
			ActivityType: &swf.ActivityType{Name: S("Billing.refund"), Version: S("1.0")},
		}},
		Client: client,
	}
	require.NoError(t, a.Migrate(context.Background()))

	// refund was registered so it is deprecated, charge is deprecated so it is registered again
	deprecations := service.Calls("DeprecateActivityType")
	require.Len(t, deprecations, 1)
	assert.Equal(t, `{"domain":"prod","activityType":{"name":"Billing.refund","version":"1.0"}}`, string(deprecations[0].Body))
	assert.Len(t, service.Calls("RegisterActivityType"), 1)
}

func TestTypesMigratorRunsDomainsFirst(t *testing.T) {
	service, client := setup(t)
	service.Fault("DescribeDomain", 400, ErrorTypeUnknownResourceFault, "unknown domain")
	service.Fault("DescribeWorkflowType", 400, ErrorTypeUnknownResourceFault, "unknown type")
	service.Fault("DescribeActivityType", 400, ErrorTypeUnknownResourceFault, "unknown type")

	tm := TypesMigrator{
		DomainMigrator: &DomainMigrator{RegisteredDomains: []swf.RegisterDomainInput{registerProd()}, Client: client},
		WorkflowTypeMigrator: &WorkflowTypeMigrator{
			RegisteredWorkflowTypes: []swf.RegisterWorkflowTypeInput{{Domain: S("prod"), Name: S("order"), Version: S("1")}},
			Client:                  client,
		},
		ActivityTypeMigrator: &ActivityTypeMigrator{
			RegisteredActivityTypes: []swf.RegisterActivityTypeInput{{Domain: S("prod"), Name: S("Billing.charge"), Version: S("1.0")}},
			Client:                  client,
		},
	}
	require.NoError(t, tm.Migrate(context.Background()))

	calls := service.Calls("")
	require.Len(t, calls, 6)
	assert.Equal(t, "DescribeDomain", calls[0].Operation)
	assert.Equal(t, "RegisterDomain", calls[1].Operation)
	assert.Len(t, service.Calls("RegisterWorkflowType"), 1)
	assert.Len(t, service.Calls("RegisterActivityType"), 1)
}

func TestTypesMigratorDefaults(t *testing.T) {
	tm := TypesMigrator{}
	assert.NoError(t, tm.Migrate(context.Background()))
}

func TestParallelMigrate(t *testing.T) {
	err := ParallelMigrate(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return errors.New("first") },
		func(context.Context) error { panic("second") },
	)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "migrator failed: second")

	assert.NoError(t, ParallelMigrate(context.Background()))
}
