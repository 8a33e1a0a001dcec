package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_TimestampsOffByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, LogConfig{})
	Info("hello")

	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()),
		"output should not start with a timestamp")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetupLogging_TimestampsEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, LogConfig{Timestamps: BoolPtr(true)})
	Info("hello")

	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	Debug("verbose-msg")

	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, LogConfig{})
	Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestBlueprintLogger_HasPrefix(t *testing.T) {
	SetupLogging(io.Discard, LogConfig{})
	l := BlueprintLogger("component")
	assert.Contains(t, l.GetPrefix(), "component")
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
