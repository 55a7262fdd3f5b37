// Package s3 wraps a data converter so that large payloads are stored in S3
// and only an s3+ser://bucket/key reference travels through SWF.
package s3

import (
	"bytes"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/juju/errors"
	"github.com/pborman/uuid"
	"github.com/sclasen/swfwire/converter"
	. "github.com/sclasen/swfwire/log"
)

const (
	urlScheme   = "s3+ser"
	magicPrefix = urlScheme + "://"

	// DefaultThreshold keeps payloads under the 32k SWF input limit inline.
	DefaultThreshold = 32000
)

var (
	defaultKeyGen = func() string { return uuid.New() }
	keyGen        = defaultKeyGen
)

// S3Ops is the part of the s3 client the converter needs, *s3.S3 satisfies it.
type S3Ops interface {
	PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

// Converter offloads payloads of Threshold bytes or more to S3.
type Converter struct {
	S3        S3Ops
	Bucket    string
	Prefix    string
	Threshold int
	Under     converter.DataConverter
}

// New builds a Converter with the DefaultThreshold. A nil under is the default converter.
func New(s3c S3Ops, bucket, prefix string, under converter.DataConverter) *Converter {
	if under == nil {
		under = converter.Default()
	}
	return &Converter{S3: s3c, Bucket: bucket, Prefix: prefix, Threshold: DefaultThreshold, Under: under}
}

// Encode encodes v with the underlying converter, storing the result in S3 when it is too large.
func (c *Converter) Encode(v interface{}) ([]byte, error) {
	enc, err := c.Under.Encode(v)
	if err != nil {
		return nil, errors.Trace(err)
	}

	slen := len(enc)
	if slen < c.threshold() {
		return enc, nil
	}

	key := keyGen()
	if c.Prefix != "" {
		key = c.Prefix + "/" + key
	}

	_, err = c.S3.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(c.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(enc),
	})
	if err != nil {
		Logf("s3converter", "bucket=%q key=%q slen=%d at=put-error error=%q", c.Bucket, key, slen, err)
		return nil, errors.Annotate(err, "s3 put")
	}
	Logf("s3converter", "bucket=%q key=%q slen=%d at=put-success", c.Bucket, key, slen)

	u := &url.URL{Scheme: urlScheme, Host: c.Bucket, Path: "/" + key}
	return []byte(u.String()), nil
}

// Decode fetches referenced payloads from S3 before handing them to the underlying converter.
func (c *Converter) Decode(data []byte, v interface{}) error {
	if !bytes.HasPrefix(data, []byte(magicPrefix)) {
		return c.Under.Decode(data, v)
	}

	u, err := url.Parse(string(data))
	if err != nil {
		return errors.Annotate(err, "problem parsing s3 object URL")
	}
	if len(u.Path) < 2 { // '/' + at least one char
		return errors.NotValidf("s3 object URL path %q", u.Path)
	}
	key := u.Path[1:]

	resp, err := c.S3.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(u.Host),
		Key:    aws.String(key),
	})
	if err != nil {
		Logf("s3converter", "bucket=%q key=%q at=get-error error=%q", u.Host, key, err)
		return errors.Annotate(err, "s3 get")
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		Logf("s3converter", "bucket=%q key=%q at=get-error error=%q", u.Host, key, err)
		return errors.Trace(err)
	}
	Logf("s3converter", "bucket=%q key=%q slen=%d at=get-success", u.Host, key, len(b))

	return c.Under.Decode(b, v)
}

func (c *Converter) threshold() int {
	if c.Threshold <= 0 {
		return DefaultThreshold
	}
	return c.Threshold
}
