package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseColors(t *testing.T) {
	tests := []struct {
		name      string
		ansiOK    bool
		stdoutTTY bool
		stderrTTY bool
		jsonMode  bool
		want      bool
	}{
		{name: "terminal", ansiOK: true, stdoutTTY: true, want: true},
		{name: "piped stdout", ansiOK: true, stderrTTY: true, want: false},
		{name: "console without ansi support", ansiOK: false, stdoutTTY: true, stderrTTY: true, want: false},
		{name: "json logs to terminal stderr", ansiOK: true, stderrTTY: true, jsonMode: true, want: true},
		{name: "json with redirected stderr", ansiOK: true, stdoutTTY: true, jsonMode: true, want: false},
		{name: "json without ansi support", ansiOK: false, stderrTTY: true, jsonMode: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, useColors(tt.ansiOK, tt.stdoutTTY, tt.stderrTTY, tt.jsonMode))
		})
	}
}
