package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")
	tests := []struct {
		level string
		want  string
	}{
		{level: "debug", want: "debug"},
		{level: "warn", want: "warning"},
		{level: "error", want: "error"},
		{level: "verbose", want: "info"},
	}
	for _, tt := range tests {
		SetLevel(tt.level)
		assert.Equal(t, tt.want, Level())
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	WithField("request", "abc").Info("rendered")
	assert.Contains(t, buf.String(), "request=abc")
	assert.Contains(t, buf.String(), "rendered")
}
