//go:build windows

package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI turns on virtual terminal processing for the Windows console
// and reports whether escape sequences will be honoured.
func EnableANSI() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	const enableVirtualTerminalProcessing = 0x0004

	return windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing) == nil
}
