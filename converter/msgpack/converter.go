// Package msgpack registers the "msgpack" data converter.
package msgpack

import (
	"encoding/base64"

	"github.com/juju/errors"
	"github.com/sclasen/swfwire/converter"
	"gopkg.in/vmihailenco/msgpack.v2"
)

func init() {
	converter.Register(converter.Msgpack, Converter{})
}

// Converter is a DataConverter that uses base64 encoded msgpack.
type Converter struct{}

// Encode serializes v with msgpack, then base64 encodes it.
func (Converter) Encode(v interface{}) ([]byte, error) {
	bin, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Trace(err)
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(bin)))
	base64.StdEncoding.Encode(out, bin)
	return out, nil
}

// Decode base64 decodes data then unmarshalls it into v with msgpack.
func (Converter) Decode(data []byte, v interface{}) error {
	bin := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(bin, data)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(msgpack.Unmarshal(bin[:n], v))
}
