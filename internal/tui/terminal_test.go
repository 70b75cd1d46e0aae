package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeFdWriter struct {
	bytes.Buffer
	fd uintptr
}

func (w *fakeFdWriter) Fd() uintptr {
	return w.fd
}

func TestIsTerminalWriterWithoutFd(t *testing.T) {
	assert.False(t, IsTerminalWriter(&bytes.Buffer{}))
}

func TestIsTerminalWriterUsesDetector(t *testing.T) {
	var seen uintptr
	restore := SetIsTerminalFuncForTesting(func(fd uintptr) bool {
		seen = fd
		return true
	})
	t.Cleanup(restore)

	assert.True(t, IsTerminalWriter(&fakeFdWriter{fd: 7}))
	assert.Equal(t, uintptr(7), seen)
}

func TestShouldColorize(t *testing.T) {
	restore := SetIsTerminalFuncForTesting(func(uintptr) bool { return true })
	t.Cleanup(restore)

	t.Run("terminal without NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.True(t, ShouldColorize(&fakeFdWriter{fd: 1}))
	})

	t.Run("NO_COLOR disables styling", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, ShouldColorize(&fakeFdWriter{fd: 1}))
	})

	t.Run("plain buffers are never colorized", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, ShouldColorize(&bytes.Buffer{}))
	})
}
