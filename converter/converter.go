// Package converter holds the data converters that encode activity inputs and
// results, and the registry they are selected from by identifier.
package converter

import (
	"sort"
	"sync"

	"github.com/juju/errors"
)

// Identifiers of the built in converters.
const (
	JSON     = "json"
	Protobuf = "protobuf"
	Msgpack  = "msgpack"
)

// DataConverter encodes values to the payload strings carried by SWF and back.
type DataConverter interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
}

var (
	mu         sync.RWMutex
	converters = map[string]DataConverter{
		JSON: JSONConverter{},
	}
)

// Register makes c available under id, replacing any converter registered before.
func Register(id string, c DataConverter) {
	if id == "" || c == nil {
		panic("converter: Register needs an id and a converter")
	}
	mu.Lock()
	defer mu.Unlock()
	converters[id] = c
}

// Lookup returns the converter registered under id. The empty id is the default.
func Lookup(id string) (DataConverter, error) {
	if id == "" {
		return Default(), nil
	}
	mu.RLock()
	defer mu.RUnlock()
	c, ok := converters[id]
	if !ok {
		return nil, errors.NotFoundf("data converter %q", id)
	}
	return c, nil
}

// Default is the JSON converter.
func Default() DataConverter {
	return JSONConverter{}
}

// Registered lists the registered identifiers, sorted.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	ids := make([]string, 0, len(converters))
	for id := range converters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
