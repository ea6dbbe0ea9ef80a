package nixnet

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/status"
)

func TestNewEnv(t *testing.T) {
	m := driver.NewMockNative()
	env := NewEnv(m, 0)

	require.Equal(t, status.DefaultBufferSize, env.Classifier.BufferSize())
	require.Equal(t, props.SessionSpace, env.Session.Space())
	require.Equal(t, props.DatabaseSpace, env.Database.Space())
	require.Equal(t, 0, env.ReportLeaks())

	require.NoError(t, env.Check(status.Success, "noop"))
	require.Error(t, env.Check(status.CodeTimeout, "nxReadFrame"))
}

func TestLoadOffWindows(t *testing.T) {
	if runtime.GOOS == "windows" && runtime.GOARCH == "amd64" {
		t.Skip("driver may be installed")
	}
	_, err := Load(driver.DefaultLibrary, 0)
	require.ErrorIs(t, err, status.ErrUnsupportedPlatform)
}
