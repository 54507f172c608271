// FILE: default_test.go
package logix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFacadeLifecycle(t *testing.T) {
	require.NotNil(t, Default())
	require.False(t, Default().Active())

	_, err := GetLogger()
	require.Error(t, err)
	assert.True(t, IsUsageError(err))

	cfg := DefaultConfig()
	cfg.Modes = []string{ModeNone}
	cfg.InternalErrorsToStderr = false
	require.NoError(t, Initialize(cfg))
	defer Shutdown()

	logger, err := GetLogger("pkg")
	require.NoError(t, err)
	assert.Equal(t, "pkg", logger.Name())

	require.NoError(t, SetLogLevel(LevelError))
	assert.Equal(t, LevelError, Default().level())

	require.NoError(t, Shutdown())
	assert.False(t, Default().Active())
}
