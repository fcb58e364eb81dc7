package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingWriter struct{ err error }

func (f failingWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestGetLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		" warn ":  log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"trace":   log.TraceLevel,
		"":        log.WarnLevel,
		"loud":    log.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), "level %q", in)
	}
}

func TestCombinedWriter(t *testing.T) {
	var a, b bytes.Buffer
	cw := NewCombinedWriter(&a, &b)

	n, err := cw.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}

func TestCombinedWriter_CollectsErrors(t *testing.T) {
	var buf bytes.Buffer
	e1, e2 := errors.New("one"), errors.New("two")
	cw := NewCombinedWriter(failingWriter{e1}, &buf, failingWriter{e2})

	n, err := cw.Write([]byte("x"))

	assert.Equal(t, 1, n)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
	assert.Equal(t, "x", buf.String())
}

func TestSetup_File(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	path := filepath.Join(t.TempDir(), "splitlog")

	out := Setup(SetupParams{LogFile: path, LogLevel: "info"})
	log.Info("week rolled over")
	require.NoError(t, Close(out))

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "week rolled over")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestSetup_FileAndStderr(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	path := filepath.Join(t.TempDir(), "splitlog.log")

	out := Setup(SetupParams{LogFile: path, LogToStderr: true, LogLevel: "debug"})

	cw, ok := out.(*CombinedWriter)
	require.True(t, ok)
	assert.Len(t, cw.Writers, 2)
	require.NoError(t, Close(out))
}

func TestSetup_StderrOnly(t *testing.T) {
	out := Setup(SetupParams{LogLevel: "error"})

	assert.Equal(t, os.Stderr, out)
	assert.Equal(t, log.ErrorLevel, log.GetLevel())
	assert.NoError(t, Close(out))
}
