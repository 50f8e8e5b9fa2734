package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoGoesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("moved %d file(s)", 3)
	assert.Contains(t, buf.String(), "moved 3 file(s)")
	assert.Contains(t, buf.String(), "level=info")
}

func TestDebugGatedByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetDebug(false)
	Debug("hidden detail")
	assert.NotContains(t, buf.String(), "hidden detail")

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible detail %q", "x")
	assert.Contains(t, buf.String(), `visible detail \"x\"`)
	assert.Contains(t, buf.String(), "level=debug")
}

func TestWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Warn("destination %s already exists", "a/b.txt")
	Error("failed to move %s", "c.txt")

	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "destination a/b.txt already exists")
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "failed to move c.txt")
}
