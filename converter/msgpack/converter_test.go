package msgpack

import (
	"testing"

	"github.com/sclasen/swfwire/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type charge struct {
	Account string
	Cents   int64
}

func TestMsgpackConversion(t *testing.T) {
	c := Converter{}
	encoded, err := c.Encode(&charge{Account: "acme", Cents: 150})
	require.NoError(t, err)

	var out charge
	require.NoError(t, c.Decode(encoded, &out))
	assert.Equal(t, charge{Account: "acme", Cents: 150}, out)
}

func TestBadBase64(t *testing.T) {
	var out charge
	assert.Error(t, Converter{}.Decode([]byte("%%%"), &out))
}

func TestRegistered(t *testing.T) {
	c, err := converter.Lookup(converter.Msgpack)
	require.NoError(t, err)
	assert.IsType(t, Converter{}, c)
}
