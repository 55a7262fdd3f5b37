package operations

import (
	"time"

	"github.com/aws/aws-sdk-go/service/swf"
	m "github.com/sclasen/swfwire/marshal"
)

// shapes shared by several operations. Each takes the accessor of the
// parent so it can be bound under any request or attributes type.

func taskList[T any](key string, get func(T) *swf.TaskList) m.FieldBinding {
	return m.Object(key, get,
		m.String("name", func(t *swf.TaskList) *string { return t.Name }),
	)
}

func executionTimeFilter[T any](key string, get func(T) *swf.ExecutionTimeFilter) m.FieldBinding {
	return m.Object(key, get,
		m.Timestamp("oldestDate", func(f *swf.ExecutionTimeFilter) *time.Time { return f.OldestDate }),
		m.Timestamp("latestDate", func(f *swf.ExecutionTimeFilter) *time.Time { return f.LatestDate }),
	)
}

func workflowTypeFilter[T any](key string, get func(T) *swf.WorkflowTypeFilter) m.FieldBinding {
	return m.Object(key, get,
		m.String("name", func(f *swf.WorkflowTypeFilter) *string { return f.Name }),
		m.String("version", func(f *swf.WorkflowTypeFilter) *string { return f.Version }),
	)
}

func tagFilter[T any](key string, get func(T) *swf.TagFilter) m.FieldBinding {
	return m.Object(key, get,
		m.String("tag", func(f *swf.TagFilter) *string { return f.Tag }),
	)
}

func executionFilter[T any](key string, get func(T) *swf.WorkflowExecutionFilter) m.FieldBinding {
	return m.Object(key, get,
		m.String("workflowId", func(f *swf.WorkflowExecutionFilter) *string { return f.WorkflowId }),
	)
}

func closeStatusFilter[T any](key string, get func(T) *swf.CloseStatusFilter) m.FieldBinding {
	return m.Object(key, get,
		m.String("status", func(f *swf.CloseStatusFilter) *string { return f.Status }),
	)
}

func workflowExecution[T any](key string, get func(T) *swf.WorkflowExecution) m.FieldBinding {
	return m.Object(key, get,
		m.String("workflowId", func(e *swf.WorkflowExecution) *string { return e.WorkflowId }),
		m.String("runId", func(e *swf.WorkflowExecution) *string { return e.RunId }),
	)
}

func workflowType[T any](key string, get func(T) *swf.WorkflowType) m.FieldBinding {
	return m.Object(key, get,
		m.String("name", func(w *swf.WorkflowType) *string { return w.Name }),
		m.String("version", func(w *swf.WorkflowType) *string { return w.Version }),
	)
}

func activityType[T any](key string, get func(T) *swf.ActivityType) m.FieldBinding {
	return m.Object(key, get,
		m.String("name", func(a *swf.ActivityType) *string { return a.Name }),
		m.String("version", func(a *swf.ActivityType) *string { return a.Version }),
	)
}

func resourceTags[T any](key string, get func(T) []*swf.ResourceTag) m.FieldBinding {
	return m.ObjectList(key, get,
		m.String("key", func(r *swf.ResourceTag) *string { return r.Key }),
		m.String("value", func(r *swf.ResourceTag) *string { return r.Value }),
	)
}

func decisions[T any](key string, get func(T) []*swf.Decision) m.FieldBinding {
	return m.ObjectList(key, get,
		m.String("decisionType", func(d *swf.Decision) *string { return d.DecisionType }),
		m.Object("scheduleActivityTaskDecisionAttributes",
			func(d *swf.Decision) *swf.ScheduleActivityTaskDecisionAttributes {
				return d.ScheduleActivityTaskDecisionAttributes
			},
			activityType("activityType", func(a *swf.ScheduleActivityTaskDecisionAttributes) *swf.ActivityType { return a.ActivityType }),
			m.String("activityId", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.ActivityId }),
			m.String("control", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.Control }),
			m.String("input", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.Input }),
			m.String("scheduleToCloseTimeout", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.ScheduleToCloseTimeout }),
			taskList("taskList", func(a *swf.ScheduleActivityTaskDecisionAttributes) *swf.TaskList { return a.TaskList }),
			m.String("taskPriority", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.TaskPriority }),
			m.String("scheduleToStartTimeout", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.ScheduleToStartTimeout }),
			m.String("startToCloseTimeout", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.StartToCloseTimeout }),
			m.String("heartbeatTimeout", func(a *swf.ScheduleActivityTaskDecisionAttributes) *string { return a.HeartbeatTimeout }),
		),
		m.Object("requestCancelActivityTaskDecisionAttributes",
			func(d *swf.Decision) *swf.RequestCancelActivityTaskDecisionAttributes {
				return d.RequestCancelActivityTaskDecisionAttributes
			},
			m.String("activityId", func(a *swf.RequestCancelActivityTaskDecisionAttributes) *string { return a.ActivityId }),
		),
		m.Object("completeWorkflowExecutionDecisionAttributes",
			func(d *swf.Decision) *swf.CompleteWorkflowExecutionDecisionAttributes {
				return d.CompleteWorkflowExecutionDecisionAttributes
			},
			m.String("result", func(a *swf.CompleteWorkflowExecutionDecisionAttributes) *string { return a.Result }),
		),
		m.Object("failWorkflowExecutionDecisionAttributes",
			func(d *swf.Decision) *swf.FailWorkflowExecutionDecisionAttributes {
				return d.FailWorkflowExecutionDecisionAttributes
			},
			m.String("reason", func(a *swf.FailWorkflowExecutionDecisionAttributes) *string { return a.Reason }),
			m.String("details", func(a *swf.FailWorkflowExecutionDecisionAttributes) *string { return a.Details }),
		),
		m.Object("cancelWorkflowExecutionDecisionAttributes",
			func(d *swf.Decision) *swf.CancelWorkflowExecutionDecisionAttributes {
				return d.CancelWorkflowExecutionDecisionAttributes
			},
			m.String("details", func(a *swf.CancelWorkflowExecutionDecisionAttributes) *string { return a.Details }),
		),
		m.Object("continueAsNewWorkflowExecutionDecisionAttributes",
			func(d *swf.Decision) *swf.ContinueAsNewWorkflowExecutionDecisionAttributes {
				return d.ContinueAsNewWorkflowExecutionDecisionAttributes
			},
			m.String("input", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *string { return a.Input }),
			m.String("executionStartToCloseTimeout", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *string {
				return a.ExecutionStartToCloseTimeout
			}),
			taskList("taskList", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *swf.TaskList { return a.TaskList }),
			m.String("taskPriority", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *string { return a.TaskPriority }),
			m.String("taskStartToCloseTimeout", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *string {
				return a.TaskStartToCloseTimeout
			}),
			m.String("childPolicy", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *string { return a.ChildPolicy }),
			m.StringList("tagList", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) []*string { return a.TagList }),
			m.String("workflowTypeVersion", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *string {
				return a.WorkflowTypeVersion
			}),
			m.String("lambdaRole", func(a *swf.ContinueAsNewWorkflowExecutionDecisionAttributes) *string { return a.LambdaRole }),
		),
		m.Object("recordMarkerDecisionAttributes",
			func(d *swf.Decision) *swf.RecordMarkerDecisionAttributes { return d.RecordMarkerDecisionAttributes },
			m.String("markerName", func(a *swf.RecordMarkerDecisionAttributes) *string { return a.MarkerName }),
			m.String("details", func(a *swf.RecordMarkerDecisionAttributes) *string { return a.Details }),
		),
		m.Object("startTimerDecisionAttributes",
			func(d *swf.Decision) *swf.StartTimerDecisionAttributes { return d.StartTimerDecisionAttributes },
			m.String("timerId", func(a *swf.StartTimerDecisionAttributes) *string { return a.TimerId }),
			m.String("control", func(a *swf.StartTimerDecisionAttributes) *string { return a.Control }),
			m.String("startToFireTimeout", func(a *swf.StartTimerDecisionAttributes) *string { return a.StartToFireTimeout }),
		),
		m.Object("cancelTimerDecisionAttributes",
			func(d *swf.Decision) *swf.CancelTimerDecisionAttributes { return d.CancelTimerDecisionAttributes },
			m.String("timerId", func(a *swf.CancelTimerDecisionAttributes) *string { return a.TimerId }),
		),
		m.Object("signalExternalWorkflowExecutionDecisionAttributes",
			func(d *swf.Decision) *swf.SignalExternalWorkflowExecutionDecisionAttributes {
				return d.SignalExternalWorkflowExecutionDecisionAttributes
			},
			m.String("workflowId", func(a *swf.SignalExternalWorkflowExecutionDecisionAttributes) *string { return a.WorkflowId }),
			m.String("runId", func(a *swf.SignalExternalWorkflowExecutionDecisionAttributes) *string { return a.RunId }),
			m.String("signalName", func(a *swf.SignalExternalWorkflowExecutionDecisionAttributes) *string { return a.SignalName }),
			m.String("input", func(a *swf.SignalExternalWorkflowExecutionDecisionAttributes) *string { return a.Input }),
			m.String("control", func(a *swf.SignalExternalWorkflowExecutionDecisionAttributes) *string { return a.Control }),
		),
		m.Object("requestCancelExternalWorkflowExecutionDecisionAttributes",
			func(d *swf.Decision) *swf.RequestCancelExternalWorkflowExecutionDecisionAttributes {
				return d.RequestCancelExternalWorkflowExecutionDecisionAttributes
			},
			m.String("workflowId", func(a *swf.RequestCancelExternalWorkflowExecutionDecisionAttributes) *string { return a.WorkflowId }),
			m.String("runId", func(a *swf.RequestCancelExternalWorkflowExecutionDecisionAttributes) *string { return a.RunId }),
			m.String("control", func(a *swf.RequestCancelExternalWorkflowExecutionDecisionAttributes) *string { return a.Control }),
		),
		m.Object("startChildWorkflowExecutionDecisionAttributes",
			func(d *swf.Decision) *swf.StartChildWorkflowExecutionDecisionAttributes {
				return d.StartChildWorkflowExecutionDecisionAttributes
			},
			workflowType("workflowType", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *swf.WorkflowType { return a.WorkflowType }),
			m.String("workflowId", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string { return a.WorkflowId }),
			m.String("control", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string { return a.Control }),
			m.String("input", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string { return a.Input }),
			m.String("executionStartToCloseTimeout", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string {
				return a.ExecutionStartToCloseTimeout
			}),
			taskList("taskList", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *swf.TaskList { return a.TaskList }),
			m.String("taskPriority", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string { return a.TaskPriority }),
			m.String("taskStartToCloseTimeout", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string {
				return a.TaskStartToCloseTimeout
			}),
			m.String("childPolicy", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string { return a.ChildPolicy }),
			m.StringList("tagList", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) []*string { return a.TagList }),
			m.String("lambdaRole", func(a *swf.StartChildWorkflowExecutionDecisionAttributes) *string { return a.LambdaRole }),
		),
		m.Object("scheduleLambdaFunctionDecisionAttributes",
			func(d *swf.Decision) *swf.ScheduleLambdaFunctionDecisionAttributes {
				return d.ScheduleLambdaFunctionDecisionAttributes
			},
			m.String("id", func(a *swf.ScheduleLambdaFunctionDecisionAttributes) *string { return a.Id }),
			m.String("name", func(a *swf.ScheduleLambdaFunctionDecisionAttributes) *string { return a.Name }),
			m.String("control", func(a *swf.ScheduleLambdaFunctionDecisionAttributes) *string { return a.Control }),
			m.String("input", func(a *swf.ScheduleLambdaFunctionDecisionAttributes) *string { return a.Input }),
			m.String("startToCloseTimeout", func(a *swf.ScheduleLambdaFunctionDecisionAttributes) *string { return a.StartToCloseTimeout }),
		),
	)
}
