package s3

import (
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bucket = "the-bucket"
	prefix = "the-prefix"

	staticKey = "a-new-key"
)

var staticKeyGen = func() string { return staticKey }

func TestEncodeSmallData(t *testing.T) {
	defer func() { keyGen = defaultKeyGen }()
	keyGen = staticKeyGen

	s3c := &fakeS3{}
	under := &fakeConverter{}
	c := New(s3c, bucket, prefix, under)

	td := strings.Repeat("x", 5)
	enc, err := c.Encode(td)
	require.NoError(t, err)

	assert.Nil(t, s3c.put.input)
	assert.Equal(t, td, under.eReq)
	assert.Equal(t, td, string(enc))
}

func TestEncodeLargeData(t *testing.T) {
	defer func() { keyGen = defaultKeyGen }()
	keyGen = staticKeyGen

	s3c := &fakeS3{}
	under := &fakeConverter{}
	c := New(s3c, bucket, prefix, under)

	td := strings.Repeat("x", 64000)
	enc, err := c.Encode(td)
	require.NoError(t, err)

	require.NotNil(t, s3c.put.input)
	assert.Equal(t, bucket, *s3c.put.input.Bucket)
	assert.Equal(t, prefix+"/"+staticKey, *s3c.put.input.Key)
	assert.Equal(t, td, s3c.put.body)
	assert.Equal(t, "s3+ser://the-bucket/the-prefix/a-new-key", string(enc))
}

func TestEncodeThreshold(t *testing.T) {
	defer func() { keyGen = defaultKeyGen }()
	keyGen = staticKeyGen

	s3c := &fakeS3{}
	c := New(s3c, bucket, "", &fakeConverter{})
	c.Threshold = 10

	enc, err := c.Encode(strings.Repeat("x", 10))
	require.NoError(t, err)
	assert.Equal(t, "s3+ser://the-bucket/a-new-key", string(enc))
}

func TestEncodePutError(t *testing.T) {
	s3c := &fakeS3{putErr: awserr.New("AccessDenied", "denied", nil)}
	c := New(s3c, bucket, prefix, &fakeConverter{})
	c.Threshold = 1

	_, err := c.Encode("xx")
	assert.Error(t, err)
}

func TestDecodeNoMagic(t *testing.T) {
	s3c := &fakeS3{}
	under := &fakeConverter{dRes: "decoded"}
	c := New(s3c, bucket, prefix, under)

	var out string
	require.NoError(t, c.Decode([]byte("xxxxx"), &out))
	assert.Equal(t, "decoded", out)
	assert.Equal(t, "xxxxx", under.dReq)
	assert.Nil(t, s3c.get.input)
}

func TestDecodeMagic(t *testing.T) {
	s3c := &fakeS3{}
	s3c.get.body = "stored"
	under := &fakeConverter{dRes: "decoded"}
	c := New(s3c, bucket, prefix, under)

	var out string
	require.NoError(t, c.Decode([]byte("s3+ser://"+bucket+"/"+prefix+"/some-key"), &out))

	assert.Equal(t, "decoded", out)
	assert.Equal(t, "stored", under.dReq)
	require.NotNil(t, s3c.get.input)
	assert.Equal(t, bucket, *s3c.get.input.Bucket)
	assert.Equal(t, prefix+"/some-key", *s3c.get.input.Key)
}

func TestDecodeShortPath(t *testing.T) {
	c := New(&fakeS3{}, bucket, prefix, &fakeConverter{})
	var out string
	assert.Error(t, c.Decode([]byte("s3+ser://"+bucket), &out))
}

func TestDefaultUnder(t *testing.T) {
	c := New(&fakeS3{}, bucket, prefix, nil)
	enc, err := c.Encode(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(enc))
}

type fakeS3 struct {
	putErr error

	put struct {
		input *s3.PutObjectInput
		body  string
	}

	get struct {
		body  string
		input *s3.GetObjectInput
	}
}

func (f *fakeS3) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.put.input = input
	b, err := io.ReadAll(input.Body)
	if err != nil {
		panic("error reading body")
	}
	f.put.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	f.get.input = input
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.get.body))}, nil
}

type fakeConverter struct {
	eReq string
	dReq string
	dRes string
}

func (f *fakeConverter) Encode(v interface{}) ([]byte, error) {
	f.eReq = v.(string)
	return []byte(f.eReq), nil
}

func (f *fakeConverter) Decode(data []byte, v interface{}) error {
	f.dReq = string(data)
	*v.(*string) = f.dRes
	return nil
}
