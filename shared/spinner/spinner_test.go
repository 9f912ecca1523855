package spinner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartSpinnerToReplacesRunningSpinner(t *testing.T) {
	var buf bytes.Buffer

	StartSpinnerTo(&buf, "Building Android APK...")
	first := loader
	assert.NotNil(t, first)
	assert.Equal(t, " Building Android APK...", first.Suffix)

	StartSpinnerTo(&buf, "Building Windows executable...")
	assert.NotSame(t, first, loader)
	assert.Equal(t, " Building Windows executable...", loader.Suffix)

	StopSpinner()
	assert.Nil(t, loader)

	StopSpinner()
	assert.Nil(t, loader)
}
