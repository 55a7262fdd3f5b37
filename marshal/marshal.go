package marshal

import (
	"encoding/base64"
	"math"
	"reflect"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/juju/errors"
	"github.com/sclasen/swfwire/internal/panicinfo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal converts input into a Request for the operation described by d.
//
// A nil input, or a nil pointer, fails with ErrInvalidArgument. Any failure
// while the body is built fails with a *MarshallingError. A Request is only
// returned when the whole body was written.
func Marshal(d *Descriptor, input interface{}) (*Request, error) {
	if absent(input) {
		return nil, ErrInvalidArgument
	}
	if d == nil {
		return nil, &MarshallingError{Cause: errors.New("nil descriptor")}
	}
	body, err := encode(d.Fields, input)
	if err != nil {
		return nil, &MarshallingError{Target: d.Target, Cause: err}
	}
	return newRequest(d, body), nil
}

func absent(input interface{}) bool {
	if input == nil {
		return true
	}
	v := reflect.ValueOf(input)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func encode(fields []FieldBinding, input interface{}) (body []byte, err error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)
	defer func() {
		if r := recover(); r != nil {
			site := panicinfo.Locate(r)
			body, err = nil, errors.Errorf("panic: %v at %s", r, site)
		}
	}()

	if err := writeObject(stream, fields, input); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, errors.Trace(stream.Error)
	}
	// the stream buffer goes back to the pool
	buf := stream.Buffer()
	body = make([]byte, len(buf))
	copy(body, buf)
	return body, nil
}

func writeObject(stream *jsoniter.Stream, fields []FieldBinding, obj interface{}) error {
	stream.WriteObjectStart()
	first := true
	for _, f := range fields {
		if f.get == nil {
			return errors.Errorf("field %q has no accessor", f.Key)
		}
		v, present, err := f.get(obj)
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(f.Key)
		if err := writeValue(stream, f, v); err != nil {
			return errors.Annotate(err, f.Key)
		}
	}
	stream.WriteObjectEnd()
	return nil
}

func writeValue(stream *jsoniter.Stream, f FieldBinding, v interface{}) error {
	switch f.Kind {
	case KindScalar:
		return writeScalar(stream, v)
	case KindObject:
		return writeObject(stream, f.fields, v)
	case KindList:
		items, ok := v.([]interface{})
		if !ok {
			return errors.Errorf("list value is %T", v)
		}
		stream.WriteArrayStart()
		for i, item := range items {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeElem(stream, f, item); err != nil {
				return errors.Annotatef(err, "[%d]", i)
			}
		}
		stream.WriteArrayEnd()
		return nil
	case KindMap:
		entries, ok := v.(map[string]interface{})
		if !ok {
			return errors.Errorf("map value is %T", v)
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		stream.WriteObjectStart()
		for i, k := range keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			if err := writeElem(stream, f, entries[k]); err != nil {
				return errors.Annotate(err, k)
			}
		}
		stream.WriteObjectEnd()
		return nil
	}
	return errors.Errorf("unknown field kind %d", f.Kind)
}

func writeElem(stream *jsoniter.Stream, f FieldBinding, v interface{}) error {
	if f.Elem == KindObject {
		return writeObject(stream, f.fields, v)
	}
	return writeScalar(stream, v)
}

func writeScalar(stream *jsoniter.Stream, v interface{}) error {
	switch x := v.(type) {
	case string:
		stream.WriteString(x)
	case int64:
		stream.WriteInt64(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.Errorf("unsupported value: %v", x)
		}
		stream.WriteFloat64(x)
	case bool:
		stream.WriteBool(x)
	case time.Time:
		writeTimestamp(stream, x)
	case []byte:
		stream.WriteString(base64.StdEncoding.EncodeToString(x))
	default:
		return errors.Errorf("unsupported scalar type %T", v)
	}
	return nil
}

// epoch seconds, with millisecond precision when not whole
func writeTimestamp(stream *jsoniter.Stream, t time.Time) {
	if t.Nanosecond() == 0 {
		stream.WriteInt64(t.Unix())
		return
	}
	stream.WriteFloat64(float64(t.UnixMilli()) / 1000)
}
