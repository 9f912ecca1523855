package spinner

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinnerTo starts the CLI loading spinner on w with the given message,
// replacing any spinner already running.
func StartSpinnerTo(w io.Writer, message string) {
	StopSpinner()
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " " + message
	loader.Start()
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
