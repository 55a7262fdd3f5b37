package sugar

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/stretchr/testify/assert"
)

func TestPointers(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "s", *S("s"))
	assert.Equal(t, int64(5), *L(5))
	assert.Equal(t, int64(7), *I(7))
	assert.True(t, *B(true))
	assert.Equal(t, now, *T(now))
}

func TestLogHelpers(t *testing.T) {
	assert.Equal(t, "nil", LS(nil))
	assert.Equal(t, "x", LS(S("x")))
	assert.Equal(t, "nil", LL(nil))
	assert.Equal(t, "42", LL(L(42)))
}

func TestCode(t *testing.T) {
	assert.Equal(t, ErrorTypeAlreadyExistsFault, Code(awserr.New(ErrorTypeAlreadyExistsFault, "exists", nil)))
	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))
}
