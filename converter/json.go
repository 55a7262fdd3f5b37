package converter

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/juju/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONConverter is a DataConverter that uses json serialization.
type JSONConverter struct{}

// Encode serializes v to json.
func (JSONConverter) Encode(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return b, nil
}

// Decode unmarshalls json data into v.
func (JSONConverter) Decode(data []byte, v interface{}) error {
	return errors.Trace(json.Unmarshal(data, v))
}
