// FILE: errors_test.go
package logix

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUsageError(t *testing.T) {
	err := &UsageError{Op: "GetLogger"}
	assert.Contains(t, err.Error(), "GetLogger")
	assert.Contains(t, err.Error(), "Initialize")

	assert.True(t, IsUsageError(err))
	assert.True(t, IsUsageError(errors.Wrap(err, "outer")))
	assert.False(t, IsUsageError(errors.New("plain")))
	assert.False(t, IsUsageError(nil))
}

func TestSinkErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := newSinkError("file", cause)

	assert.Contains(t, err.Error(), "file")
	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)
}

func TestConfigValueError(t *testing.T) {
	err := &ConfigValueError{Key: "level", Value: "loud", Default: "debug"}
	msg := err.Error()
	assert.Contains(t, msg, "level")
	assert.Contains(t, msg, "loud")
	assert.Contains(t, msg, "debug")
}
