// Package operations holds the marshalling descriptors of the Amazon SWF API.
//
// Every descriptor binds the request type of the matching aws-sdk-go swf
// operation, so an *swf.CountOpenWorkflowExecutionsInput is marshalled with
// CountOpenWorkflowExecutions and so on. Descriptors are shared and must not
// be modified.
package operations

import (
	"sort"

	"github.com/aws/aws-sdk-go/service/swf"
	m "github.com/sclasen/swfwire/marshal"
)

// ServicePrefix is the service part of every SWF X-Amz-Target.
const ServicePrefix = "SimpleWorkflowService"

func target(op string) string {
	return ServicePrefix + "." + op
}

func descriptor(op string, fields ...m.FieldBinding) *m.Descriptor {
	return &m.Descriptor{Target: target(op), Method: "POST", Fields: fields}
}

var registry = map[string]*m.Descriptor{}

func register(ds ...*m.Descriptor) {
	for _, d := range ds {
		registry[d.Operation()] = d
	}
}

// Lookup finds the descriptor of the named operation, e.g. "PollForDecisionTask".
func Lookup(operation string) (*m.Descriptor, bool) {
	d, ok := registry[operation]
	return d, ok
}

// Names lists every known operation, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	register(
		CountClosedWorkflowExecutions,
		CountOpenWorkflowExecutions,
		CountPendingActivityTasks,
		CountPendingDecisionTasks,
		DeprecateActivityType,
		DeprecateDomain,
		DeprecateWorkflowType,
		DescribeActivityType,
		DescribeDomain,
		DescribeWorkflowExecution,
		DescribeWorkflowType,
		GetWorkflowExecutionHistory,
		ListActivityTypes,
		ListClosedWorkflowExecutions,
		ListDomains,
		ListOpenWorkflowExecutions,
		ListWorkflowTypes,
		PollForActivityTask,
		PollForDecisionTask,
		RecordActivityTaskHeartbeat,
		RegisterActivityType,
		RegisterDomain,
		RegisterWorkflowType,
		RequestCancelWorkflowExecution,
		RespondActivityTaskCanceled,
		RespondActivityTaskCompleted,
		RespondActivityTaskFailed,
		RespondDecisionTaskCompleted,
		SignalWorkflowExecution,
		StartWorkflowExecution,
		TerminateWorkflowExecution,
	)
}

// Visibility

var CountOpenWorkflowExecutions = descriptor("CountOpenWorkflowExecutions",
	m.String("domain", func(in *swf.CountOpenWorkflowExecutionsInput) *string { return in.Domain }),
	executionTimeFilter("startTimeFilter", func(in *swf.CountOpenWorkflowExecutionsInput) *swf.ExecutionTimeFilter { return in.StartTimeFilter }),
	workflowTypeFilter("typeFilter", func(in *swf.CountOpenWorkflowExecutionsInput) *swf.WorkflowTypeFilter { return in.TypeFilter }),
	tagFilter("tagFilter", func(in *swf.CountOpenWorkflowExecutionsInput) *swf.TagFilter { return in.TagFilter }),
	executionFilter("executionFilter", func(in *swf.CountOpenWorkflowExecutionsInput) *swf.WorkflowExecutionFilter { return in.ExecutionFilter }),
)

var CountClosedWorkflowExecutions = descriptor("CountClosedWorkflowExecutions",
	m.String("domain", func(in *swf.CountClosedWorkflowExecutionsInput) *string { return in.Domain }),
	executionTimeFilter("startTimeFilter", func(in *swf.CountClosedWorkflowExecutionsInput) *swf.ExecutionTimeFilter { return in.StartTimeFilter }),
	executionTimeFilter("closeTimeFilter", func(in *swf.CountClosedWorkflowExecutionsInput) *swf.ExecutionTimeFilter { return in.CloseTimeFilter }),
	executionFilter("executionFilter", func(in *swf.CountClosedWorkflowExecutionsInput) *swf.WorkflowExecutionFilter { return in.ExecutionFilter }),
	workflowTypeFilter("typeFilter", func(in *swf.CountClosedWorkflowExecutionsInput) *swf.WorkflowTypeFilter { return in.TypeFilter }),
	tagFilter("tagFilter", func(in *swf.CountClosedWorkflowExecutionsInput) *swf.TagFilter { return in.TagFilter }),
	closeStatusFilter("closeStatusFilter", func(in *swf.CountClosedWorkflowExecutionsInput) *swf.CloseStatusFilter { return in.CloseStatusFilter }),
)

var CountPendingActivityTasks = descriptor("CountPendingActivityTasks",
	m.String("domain", func(in *swf.CountPendingActivityTasksInput) *string { return in.Domain }),
	taskList("taskList", func(in *swf.CountPendingActivityTasksInput) *swf.TaskList { return in.TaskList }),
)

var CountPendingDecisionTasks = descriptor("CountPendingDecisionTasks",
	m.String("domain", func(in *swf.CountPendingDecisionTasksInput) *string { return in.Domain }),
	taskList("taskList", func(in *swf.CountPendingDecisionTasksInput) *swf.TaskList { return in.TaskList }),
)

var DescribeWorkflowExecution = descriptor("DescribeWorkflowExecution",
	m.String("domain", func(in *swf.DescribeWorkflowExecutionInput) *string { return in.Domain }),
	workflowExecution("execution", func(in *swf.DescribeWorkflowExecutionInput) *swf.WorkflowExecution { return in.Execution }),
)

var GetWorkflowExecutionHistory = descriptor("GetWorkflowExecutionHistory",
	m.String("domain", func(in *swf.GetWorkflowExecutionHistoryInput) *string { return in.Domain }),
	workflowExecution("execution", func(in *swf.GetWorkflowExecutionHistoryInput) *swf.WorkflowExecution { return in.Execution }),
	m.String("nextPageToken", func(in *swf.GetWorkflowExecutionHistoryInput) *string { return in.NextPageToken }),
	m.Long("maximumPageSize", func(in *swf.GetWorkflowExecutionHistoryInput) *int64 { return in.MaximumPageSize }),
	m.Bool("reverseOrder", func(in *swf.GetWorkflowExecutionHistoryInput) *bool { return in.ReverseOrder }),
)

var ListOpenWorkflowExecutions = descriptor("ListOpenWorkflowExecutions",
	m.String("domain", func(in *swf.ListOpenWorkflowExecutionsInput) *string { return in.Domain }),
	executionTimeFilter("startTimeFilter", func(in *swf.ListOpenWorkflowExecutionsInput) *swf.ExecutionTimeFilter { return in.StartTimeFilter }),
	workflowTypeFilter("typeFilter", func(in *swf.ListOpenWorkflowExecutionsInput) *swf.WorkflowTypeFilter { return in.TypeFilter }),
	tagFilter("tagFilter", func(in *swf.ListOpenWorkflowExecutionsInput) *swf.TagFilter { return in.TagFilter }),
	m.String("nextPageToken", func(in *swf.ListOpenWorkflowExecutionsInput) *string { return in.NextPageToken }),
	m.Long("maximumPageSize", func(in *swf.ListOpenWorkflowExecutionsInput) *int64 { return in.MaximumPageSize }),
	m.Bool("reverseOrder", func(in *swf.ListOpenWorkflowExecutionsInput) *bool { return in.ReverseOrder }),
	executionFilter("executionFilter", func(in *swf.ListOpenWorkflowExecutionsInput) *swf.WorkflowExecutionFilter { return in.ExecutionFilter }),
)

var ListClosedWorkflowExecutions = descriptor("ListClosedWorkflowExecutions",
	m.String("domain", func(in *swf.ListClosedWorkflowExecutionsInput) *string { return in.Domain }),
	executionTimeFilter("startTimeFilter", func(in *swf.ListClosedWorkflowExecutionsInput) *swf.ExecutionTimeFilter { return in.StartTimeFilter }),
	executionTimeFilter("closeTimeFilter", func(in *swf.ListClosedWorkflowExecutionsInput) *swf.ExecutionTimeFilter { return in.CloseTimeFilter }),
	executionFilter("executionFilter", func(in *swf.ListClosedWorkflowExecutionsInput) *swf.WorkflowExecutionFilter { return in.ExecutionFilter }),
	closeStatusFilter("closeStatusFilter", func(in *swf.ListClosedWorkflowExecutionsInput) *swf.CloseStatusFilter { return in.CloseStatusFilter }),
	workflowTypeFilter("typeFilter", func(in *swf.ListClosedWorkflowExecutionsInput) *swf.WorkflowTypeFilter { return in.TypeFilter }),
	tagFilter("tagFilter", func(in *swf.ListClosedWorkflowExecutionsInput) *swf.TagFilter { return in.TagFilter }),
	m.String("nextPageToken", func(in *swf.ListClosedWorkflowExecutionsInput) *string { return in.NextPageToken }),
	m.Long("maximumPageSize", func(in *swf.ListClosedWorkflowExecutionsInput) *int64 { return in.MaximumPageSize }),
	m.Bool("reverseOrder", func(in *swf.ListClosedWorkflowExecutionsInput) *bool { return in.ReverseOrder }),
)

// Registration

var RegisterDomain = descriptor("RegisterDomain",
	m.String("name", func(in *swf.RegisterDomainInput) *string { return in.Name }),
	m.String("description", func(in *swf.RegisterDomainInput) *string { return in.Description }),
	m.String("workflowExecutionRetentionPeriodInDays", func(in *swf.RegisterDomainInput) *string {
		return in.WorkflowExecutionRetentionPeriodInDays
	}),
	resourceTags("tags", func(in *swf.RegisterDomainInput) []*swf.ResourceTag { return in.Tags }),
)

var DeprecateDomain = descriptor("DeprecateDomain",
	m.String("name", func(in *swf.DeprecateDomainInput) *string { return in.Name }),
)

var DescribeDomain = descriptor("DescribeDomain",
	m.String("name", func(in *swf.DescribeDomainInput) *string { return in.Name }),
)

var ListDomains = descriptor("ListDomains",
	m.String("nextPageToken", func(in *swf.ListDomainsInput) *string { return in.NextPageToken }),
	m.String("registrationStatus", func(in *swf.ListDomainsInput) *string { return in.RegistrationStatus }),
	m.Long("maximumPageSize", func(in *swf.ListDomainsInput) *int64 { return in.MaximumPageSize }),
	m.Bool("reverseOrder", func(in *swf.ListDomainsInput) *bool { return in.ReverseOrder }),
)

var RegisterWorkflowType = descriptor("RegisterWorkflowType",
	m.String("domain", func(in *swf.RegisterWorkflowTypeInput) *string { return in.Domain }),
	m.String("name", func(in *swf.RegisterWorkflowTypeInput) *string { return in.Name }),
	m.String("version", func(in *swf.RegisterWorkflowTypeInput) *string { return in.Version }),
	m.String("description", func(in *swf.RegisterWorkflowTypeInput) *string { return in.Description }),
	m.String("defaultTaskStartToCloseTimeout", func(in *swf.RegisterWorkflowTypeInput) *string { return in.DefaultTaskStartToCloseTimeout }),
	m.String("defaultExecutionStartToCloseTimeout", func(in *swf.RegisterWorkflowTypeInput) *string {
		return in.DefaultExecutionStartToCloseTimeout
	}),
	taskList("defaultTaskList", func(in *swf.RegisterWorkflowTypeInput) *swf.TaskList { return in.DefaultTaskList }),
	m.String("defaultTaskPriority", func(in *swf.RegisterWorkflowTypeInput) *string { return in.DefaultTaskPriority }),
	m.String("defaultChildPolicy", func(in *swf.RegisterWorkflowTypeInput) *string { return in.DefaultChildPolicy }),
	m.String("defaultLambdaRole", func(in *swf.RegisterWorkflowTypeInput) *string { return in.DefaultLambdaRole }),
)

var DeprecateWorkflowType = descriptor("DeprecateWorkflowType",
	m.String("domain", func(in *swf.DeprecateWorkflowTypeInput) *string { return in.Domain }),
	workflowType("workflowType", func(in *swf.DeprecateWorkflowTypeInput) *swf.WorkflowType { return in.WorkflowType }),
)

var DescribeWorkflowType = descriptor("DescribeWorkflowType",
	m.String("domain", func(in *swf.DescribeWorkflowTypeInput) *string { return in.Domain }),
	workflowType("workflowType", func(in *swf.DescribeWorkflowTypeInput) *swf.WorkflowType { return in.WorkflowType }),
)

var ListWorkflowTypes = descriptor("ListWorkflowTypes",
	m.String("domain", func(in *swf.ListWorkflowTypesInput) *string { return in.Domain }),
	m.String("name", func(in *swf.ListWorkflowTypesInput) *string { return in.Name }),
	m.String("registrationStatus", func(in *swf.ListWorkflowTypesInput) *string { return in.RegistrationStatus }),
	m.String("nextPageToken", func(in *swf.ListWorkflowTypesInput) *string { return in.NextPageToken }),
	m.Long("maximumPageSize", func(in *swf.ListWorkflowTypesInput) *int64 { return in.MaximumPageSize }),
	m.Bool("reverseOrder", func(in *swf.ListWorkflowTypesInput) *bool { return in.ReverseOrder }),
)

var RegisterActivityType = descriptor("RegisterActivityType",
	m.String("domain", func(in *swf.RegisterActivityTypeInput) *string { return in.Domain }),
	m.String("name", func(in *swf.RegisterActivityTypeInput) *string { return in.Name }),
	m.String("version", func(in *swf.RegisterActivityTypeInput) *string { return in.Version }),
	m.String("description", func(in *swf.RegisterActivityTypeInput) *string { return in.Description }),
	m.String("defaultTaskStartToCloseTimeout", func(in *swf.RegisterActivityTypeInput) *string { return in.DefaultTaskStartToCloseTimeout }),
	m.String("defaultTaskHeartbeatTimeout", func(in *swf.RegisterActivityTypeInput) *string { return in.DefaultTaskHeartbeatTimeout }),
	taskList("defaultTaskList", func(in *swf.RegisterActivityTypeInput) *swf.TaskList { return in.DefaultTaskList }),
	m.String("defaultTaskPriority", func(in *swf.RegisterActivityTypeInput) *string { return in.DefaultTaskPriority }),
	m.String("defaultTaskScheduleToStartTimeout", func(in *swf.RegisterActivityTypeInput) *string {
		return in.DefaultTaskScheduleToStartTimeout
	}),
	m.String("defaultTaskScheduleToCloseTimeout", func(in *swf.RegisterActivityTypeInput) *string {
		return in.DefaultTaskScheduleToCloseTimeout
	}),
)

var DeprecateActivityType = descriptor("DeprecateActivityType",
	m.String("domain", func(in *swf.DeprecateActivityTypeInput) *string { return in.Domain }),
	activityType("activityType", func(in *swf.DeprecateActivityTypeInput) *swf.ActivityType { return in.ActivityType }),
)

var DescribeActivityType = descriptor("DescribeActivityType",
	m.String("domain", func(in *swf.DescribeActivityTypeInput) *string { return in.Domain }),
	activityType("activityType", func(in *swf.DescribeActivityTypeInput) *swf.ActivityType { return in.ActivityType }),
)

var ListActivityTypes = descriptor("ListActivityTypes",
	m.String("domain", func(in *swf.ListActivityTypesInput) *string { return in.Domain }),
	m.String("name", func(in *swf.ListActivityTypesInput) *string { return in.Name }),
	m.String("registrationStatus", func(in *swf.ListActivityTypesInput) *string { return in.RegistrationStatus }),
	m.String("nextPageToken", func(in *swf.ListActivityTypesInput) *string { return in.NextPageToken }),
	m.Long("maximumPageSize", func(in *swf.ListActivityTypesInput) *int64 { return in.MaximumPageSize }),
	m.Bool("reverseOrder", func(in *swf.ListActivityTypesInput) *bool { return in.ReverseOrder }),
)

// Tasks

var PollForDecisionTask = descriptor("PollForDecisionTask",
	m.String("domain", func(in *swf.PollForDecisionTaskInput) *string { return in.Domain }),
	taskList("taskList", func(in *swf.PollForDecisionTaskInput) *swf.TaskList { return in.TaskList }),
	m.String("identity", func(in *swf.PollForDecisionTaskInput) *string { return in.Identity }),
	m.String("nextPageToken", func(in *swf.PollForDecisionTaskInput) *string { return in.NextPageToken }),
	m.Long("maximumPageSize", func(in *swf.PollForDecisionTaskInput) *int64 { return in.MaximumPageSize }),
	m.Bool("reverseOrder", func(in *swf.PollForDecisionTaskInput) *bool { return in.ReverseOrder }),
	m.Bool("startAtPreviousStartedEvent", func(in *swf.PollForDecisionTaskInput) *bool { return in.StartAtPreviousStartedEvent }),
)

var RespondDecisionTaskCompleted = descriptor("RespondDecisionTaskCompleted",
	m.String("taskToken", func(in *swf.RespondDecisionTaskCompletedInput) *string { return in.TaskToken }),
	decisions("decisions", func(in *swf.RespondDecisionTaskCompletedInput) []*swf.Decision { return in.Decisions }),
	m.String("executionContext", func(in *swf.RespondDecisionTaskCompletedInput) *string { return in.ExecutionContext }),
	taskList("taskList", func(in *swf.RespondDecisionTaskCompletedInput) *swf.TaskList { return in.TaskList }),
	m.String("taskListScheduleToStartTimeout", func(in *swf.RespondDecisionTaskCompletedInput) *string {
		return in.TaskListScheduleToStartTimeout
	}),
)

var PollForActivityTask = descriptor("PollForActivityTask",
	m.String("domain", func(in *swf.PollForActivityTaskInput) *string { return in.Domain }),
	taskList("taskList", func(in *swf.PollForActivityTaskInput) *swf.TaskList { return in.TaskList }),
	m.String("identity", func(in *swf.PollForActivityTaskInput) *string { return in.Identity }),
)

var RecordActivityTaskHeartbeat = descriptor("RecordActivityTaskHeartbeat",
	m.String("taskToken", func(in *swf.RecordActivityTaskHeartbeatInput) *string { return in.TaskToken }),
	m.String("details", func(in *swf.RecordActivityTaskHeartbeatInput) *string { return in.Details }),
)

var RespondActivityTaskCompleted = descriptor("RespondActivityTaskCompleted",
	m.String("taskToken", func(in *swf.RespondActivityTaskCompletedInput) *string { return in.TaskToken }),
	m.String("result", func(in *swf.RespondActivityTaskCompletedInput) *string { return in.Result }),
)

var RespondActivityTaskFailed = descriptor("RespondActivityTaskFailed",
	m.String("taskToken", func(in *swf.RespondActivityTaskFailedInput) *string { return in.TaskToken }),
	m.String("reason", func(in *swf.RespondActivityTaskFailedInput) *string { return in.Reason }),
	m.String("details", func(in *swf.RespondActivityTaskFailedInput) *string { return in.Details }),
)

var RespondActivityTaskCanceled = descriptor("RespondActivityTaskCanceled",
	m.String("taskToken", func(in *swf.RespondActivityTaskCanceledInput) *string { return in.TaskToken }),
	m.String("details", func(in *swf.RespondActivityTaskCanceledInput) *string { return in.Details }),
)

// Executions

var StartWorkflowExecution = descriptor("StartWorkflowExecution",
	m.String("domain", func(in *swf.StartWorkflowExecutionInput) *string { return in.Domain }),
	m.String("workflowId", func(in *swf.StartWorkflowExecutionInput) *string { return in.WorkflowId }),
	workflowType("workflowType", func(in *swf.StartWorkflowExecutionInput) *swf.WorkflowType { return in.WorkflowType }),
	taskList("taskList", func(in *swf.StartWorkflowExecutionInput) *swf.TaskList { return in.TaskList }),
	m.String("taskPriority", func(in *swf.StartWorkflowExecutionInput) *string { return in.TaskPriority }),
	m.String("input", func(in *swf.StartWorkflowExecutionInput) *string { return in.Input }),
	m.String("executionStartToCloseTimeout", func(in *swf.StartWorkflowExecutionInput) *string { return in.ExecutionStartToCloseTimeout }),
	m.StringList("tagList", func(in *swf.StartWorkflowExecutionInput) []*string { return in.TagList }),
	m.String("taskStartToCloseTimeout", func(in *swf.StartWorkflowExecutionInput) *string { return in.TaskStartToCloseTimeout }),
	m.String("childPolicy", func(in *swf.StartWorkflowExecutionInput) *string { return in.ChildPolicy }),
	m.String("lambdaRole", func(in *swf.StartWorkflowExecutionInput) *string { return in.LambdaRole }),
)

var SignalWorkflowExecution = descriptor("SignalWorkflowExecution",
	m.String("domain", func(in *swf.SignalWorkflowExecutionInput) *string { return in.Domain }),
	m.String("workflowId", func(in *swf.SignalWorkflowExecutionInput) *string { return in.WorkflowId }),
	m.String("runId", func(in *swf.SignalWorkflowExecutionInput) *string { return in.RunId }),
	m.String("signalName", func(in *swf.SignalWorkflowExecutionInput) *string { return in.SignalName }),
	m.String("input", func(in *swf.SignalWorkflowExecutionInput) *string { return in.Input }),
)

var RequestCancelWorkflowExecution = descriptor("RequestCancelWorkflowExecution",
	m.String("domain", func(in *swf.RequestCancelWorkflowExecutionInput) *string { return in.Domain }),
	m.String("workflowId", func(in *swf.RequestCancelWorkflowExecutionInput) *string { return in.WorkflowId }),
	m.String("runId", func(in *swf.RequestCancelWorkflowExecutionInput) *string { return in.RunId }),
)

var TerminateWorkflowExecution = descriptor("TerminateWorkflowExecution",
	m.String("domain", func(in *swf.TerminateWorkflowExecutionInput) *string { return in.Domain }),
	m.String("workflowId", func(in *swf.TerminateWorkflowExecutionInput) *string { return in.WorkflowId }),
	m.String("runId", func(in *swf.TerminateWorkflowExecutionInput) *string { return in.RunId }),
	m.String("reason", func(in *swf.TerminateWorkflowExecutionInput) *string { return in.Reason }),
	m.String("details", func(in *swf.TerminateWorkflowExecutionInput) *string { return in.Details }),
	m.String("childPolicy", func(in *swf.TerminateWorkflowExecutionInput) *string { return in.ChildPolicy }),
)
