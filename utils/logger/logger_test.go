package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoWritesTaggedLine(t *testing.T) {
	SetColors(false)
	defer SetColors(true)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Info("Opening %s", Path("pubspec.yaml"))
	Warn("nothing to do")

	assert.Equal(t, "[INFO]: Opening pubspec.yaml\n[WARN]: nothing to do\n", buf.String())
}

func TestHighlightsKeepText(t *testing.T) {
	SetColors(false)
	defer SetColors(true)

	assert.Equal(t, "1.1.1", Old("1.1.1"))
	assert.Equal(t, "1.1.2", New("1.1.2"))
	assert.Equal(t, "1.1.1", Current("1.1.1"))
}
