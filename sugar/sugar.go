// Package sugar has small helpers for building and logging aws-sdk-go swf values.
package sugar

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
)

//error code constants
const (
	ErrorTypeUnknownResourceFault                 = "UnknownResourceFault"
	ErrorTypeWorkflowExecutionAlreadyStartedFault = "WorkflowExecutionAlreadyStartedFault"
	ErrorTypeDomainAlreadyExistsFault             = "DomainAlreadyExistsFault"
	ErrorTypeAlreadyExistsFault                   = "TypeAlreadyExistsFault"
	ErrorTypeDomainDeprecatedFault                = "DomainDeprecatedFault"
	ErrorTypeDeprecatedFault                      = "TypeDeprecatedFault"
	ErrorTypeLimitExceededFault                   = "LimitExceededFault"
	ErrorTypeOperationNotPermittedFault           = "OperationNotPermittedFault"
	ErrorTypeSerializationException               = "SerializationException"
	ErrorTypeValidationException                  = "ValidationException"
)

// Code returns the fault code of err when it is an awserr.Error, empty otherwise.
func Code(err error) string {
	if ae, ok := err.(awserr.Error); ok {
		return ae.Code()
	}
	return ""
}

//L is a helper so you dont have to type aws.Int64(myLong)
func L(l int64) *int64 {
	return aws.Int64(l)
}

//I is a helper so you dont have to type aws.Int64(int64(myInt))
func I(i int) *int64 {
	return aws.Int64(int64(i))
}

//S is a helper so you dont have to type aws.String(myString)
func S(s string) *string {
	return aws.String(s)
}

//B is a helper so you dont have to type aws.Bool(myBool)
func B(b bool) *bool {
	return aws.Bool(b)
}

//T is a helper so you dont have to type aws.Time(myTime)
func T(t time.Time) *time.Time {
	return aws.Time(t)
}

//LS is a helper so you dont have to do nil checks before logging aws.StringValue values
func LS(s *string) string {
	if s == nil {
		return "nil"
	}
	return *s
}

//LL is a helper so you dont have to do nil checks before logging aws.Int64Value values
func LL(l *int64) string {
	if l == nil {
		return "nil"
	}
	return strconv.FormatInt(*l, 10)
}
