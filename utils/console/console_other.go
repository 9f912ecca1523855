//go:build !windows

package console

import (
	"os"
	"strings"
)

// IsBlueBackground reports whether COLORFGBG advertises a blue background
// (ANSI 4 or bright blue 12).
func IsBlueBackground() bool {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	bg := strings.TrimSpace(parts[len(parts)-1])
	return bg == "4" || bg == "12"
}
