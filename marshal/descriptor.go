package marshal

import (
	"time"

	"github.com/juju/errors"
)

// Kind is the wire shape of a FieldBinding.
type Kind int

// The kinds of FieldBinding.
const (
	KindScalar Kind = iota
	KindObject
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// extractor pulls the bound value out of its parent. present is false when the
// value is nil and must not be emitted.
type extractor func(parent interface{}) (value interface{}, present bool, err error)

// FieldBinding maps one field of a request object to a wire key.
//
// Build bindings with the typed constructors (String, Long, Object, ObjectList...),
// the zero value is not usable.
type FieldBinding struct {
	// Key is the JSON key the field is written under.
	Key string
	// Kind is the wire shape of the field.
	Kind Kind
	// Elem is the shape of the elements of a list or map binding, KindScalar or KindObject.
	Elem Kind

	get    extractor
	fields []FieldBinding
}

// Fields returns the nested bindings of an object binding, or of the elements of a list or map of objects.
func (f FieldBinding) Fields() []FieldBinding {
	return f.fields
}

// Descriptor describes how one API operation is marshalled.
type Descriptor struct {
	// Target is the X-Amz-Target value, Service.Operation.
	Target string
	// Method is the HTTP method, POST when empty.
	Method string
	// Fields are the top level bindings, emitted in this order.
	Fields []FieldBinding
}

// Operation returns the operation part of the Target.
func (d *Descriptor) Operation() string {
	return operation(d.Target)
}

// Marshal is shorthand for Marshal(d, input).
func (d *Descriptor) Marshal(input interface{}) (*Request, error) {
	return Marshal(d, input)
}

func bind[T any](key string, get func(T) (interface{}, bool)) extractor {
	return func(parent interface{}) (interface{}, bool, error) {
		t, ok := parent.(T)
		if !ok {
			var want T
			return nil, false, errors.Errorf("field %q is bound to %T, got %T", key, want, parent)
		}
		v, present := get(t)
		return v, present, nil
	}
}

func scalar[T any](key string, get func(T) (interface{}, bool)) FieldBinding {
	return FieldBinding{Key: key, Kind: KindScalar, get: bind(key, get)}
}

// String binds a *string field.
func String[T any](key string, get func(T) *string) FieldBinding {
	return scalar(key, func(t T) (interface{}, bool) {
		if v := get(t); v != nil {
			return *v, true
		}
		return nil, false
	})
}

// Long binds a *int64 field.
func Long[T any](key string, get func(T) *int64) FieldBinding {
	return scalar(key, func(t T) (interface{}, bool) {
		if v := get(t); v != nil {
			return *v, true
		}
		return nil, false
	})
}

// Double binds a *float64 field. NaN and infinities cannot be marshalled.
func Double[T any](key string, get func(T) *float64) FieldBinding {
	return scalar(key, func(t T) (interface{}, bool) {
		if v := get(t); v != nil {
			return *v, true
		}
		return nil, false
	})
}

// Bool binds a *bool field.
func Bool[T any](key string, get func(T) *bool) FieldBinding {
	return scalar(key, func(t T) (interface{}, bool) {
		if v := get(t); v != nil {
			return *v, true
		}
		return nil, false
	})
}

// Timestamp binds a *time.Time field, written as epoch seconds.
func Timestamp[T any](key string, get func(T) *time.Time) FieldBinding {
	return scalar(key, func(t T) (interface{}, bool) {
		if v := get(t); v != nil {
			return *v, true
		}
		return nil, false
	})
}

// Blob binds a []byte field, written base64 encoded. A nil slice is absent, an empty one is not.
func Blob[T any](key string, get func(T) []byte) FieldBinding {
	return scalar(key, func(t T) (interface{}, bool) {
		if v := get(t); v != nil {
			return v, true
		}
		return nil, false
	})
}

// Object binds a nested structure. fields are bindings over *N and the key is
// emitted whenever the nested pointer is non-nil, even if none of fields are.
func Object[T any, N any](key string, get func(T) *N, fields ...FieldBinding) FieldBinding {
	return FieldBinding{
		Key:    key,
		Kind:   KindObject,
		fields: fields,
		get: bind(key, func(t T) (interface{}, bool) {
			if n := get(t); n != nil {
				return n, true
			}
			return nil, false
		}),
	}
}

// StringList binds a []*string field.
func StringList[T any](key string, get func(T) []*string) FieldBinding {
	return FieldBinding{
		Key:  key,
		Kind: KindList,
		Elem: KindScalar,
		get: bind(key, func(t T) (interface{}, bool) {
			l := get(t)
			if l == nil {
				return nil, false
			}
			items := make([]interface{}, 0, len(l))
			for _, s := range l {
				if s != nil {
					items = append(items, *s)
				}
			}
			return items, true
		}),
	}
}

// ObjectList binds a []*N field, each element written with fields.
func ObjectList[T any, N any](key string, get func(T) []*N, fields ...FieldBinding) FieldBinding {
	return FieldBinding{
		Key:    key,
		Kind:   KindList,
		Elem:   KindObject,
		fields: fields,
		get: bind(key, func(t T) (interface{}, bool) {
			l := get(t)
			if l == nil {
				return nil, false
			}
			items := make([]interface{}, 0, len(l))
			for _, n := range l {
				if n != nil {
					items = append(items, n)
				}
			}
			return items, true
		}),
	}
}

// StringMap binds a map[string]*string field.
func StringMap[T any](key string, get func(T) map[string]*string) FieldBinding {
	return FieldBinding{
		Key:  key,
		Kind: KindMap,
		Elem: KindScalar,
		get: bind(key, func(t T) (interface{}, bool) {
			m := get(t)
			if m == nil {
				return nil, false
			}
			entries := make(map[string]interface{}, len(m))
			for k, v := range m {
				if v != nil {
					entries[k] = *v
				}
			}
			return entries, true
		}),
	}
}

// ObjectMap binds a map[string]*N field, each value written with fields.
func ObjectMap[T any, N any](key string, get func(T) map[string]*N, fields ...FieldBinding) FieldBinding {
	return FieldBinding{
		Key:    key,
		Kind:   KindMap,
		Elem:   KindObject,
		fields: fields,
		get: bind(key, func(t T) (interface{}, bool) {
			m := get(t)
			if m == nil {
				return nil, false
			}
			entries := make(map[string]interface{}, len(m))
			for k, n := range m {
				if n != nil {
					entries[k] = n
				}
			}
			return entries, true
		}),
	}
}
