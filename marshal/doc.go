/*
Package marshal turns typed request objects into wire-ready awsjson 1.0 requests.

Every operation of a JSON RPC style API such as SWF is described once by a
Descriptor: the X-Amz-Target of the operation, its HTTP method and an ordered
list of FieldBindings. A FieldBinding names the wire key for one field of the
request object and knows how to pull that field out of it. Marshal walks the
bindings in declared order and writes a single JSON object:

	Scalar  emitted iff the bound value is non-nil
	Object  emitted iff the nested reference is non-nil, possibly as {}
	List    emitted iff the slice is non-nil, nil elements are skipped
	Map     emitted iff the map is non-nil, keys sorted

For the SWF CountOpenWorkflowExecutions operation with only a domain and the
oldest date of the start time filter set, the body is

	{"domain":"prod","startTimeFilter":{"oldestDate":100}}

Marshalling is all-or-nothing. An absent request object fails with
ErrInvalidArgument, anything that goes wrong while the body is being built
fails with a *MarshallingError, and in both cases no Request is returned.

Descriptors are immutable and Marshal keeps no state between calls, so a
single Descriptor may be shared by any number of goroutines.
*/
package marshal
