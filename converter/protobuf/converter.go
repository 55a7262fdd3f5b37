// Package protobuf registers the "protobuf" data converter. Import it for its
// side effect, or use Converter directly.
package protobuf

import (
	"encoding/base64"

	"github.com/golang/protobuf/proto"
	"github.com/juju/errors"
	"github.com/sclasen/swfwire/converter"
)

func init() {
	converter.Register(converter.Protobuf, Converter{})
}

// Converter is a DataConverter that uses base64 encoded protobufs. Values
// passed to it must satisfy proto.Message.
type Converter struct{}

// Encode serializes v with protobuf, then base64 encodes it.
func (Converter) Encode(v interface{}) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, errors.NotValidf("proto message %T", v)
	}
	bin, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(bin)))
	base64.StdEncoding.Encode(out, bin)
	return out, nil
}

// Decode base64 decodes data then unmarshalls it into v with protobuf.
func (Converter) Decode(data []byte, v interface{}) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return errors.NotValidf("proto message %T", v)
	}
	bin := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(bin, data)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(proto.Unmarshal(bin[:n], msg))
}
