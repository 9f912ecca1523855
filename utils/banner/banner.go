package banner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/nokutoka/nokubuild/utils/console"
	"golang.org/x/term"
)

type bannerColor int

const (
	bannerFlutterBlue bannerColor = iota
	bannerDartTeal
	bannerAndroidGreen
	bannerWindowsBlue
	bannerMomijiRed
	bannerAmberOrange
)

var bannerTitleColors = []string{
	"\x1b[38;2;2;125;253m",  // Flutter Blue
	"\x1b[38;2;1;117;194m",  // Dart Teal
	"\x1b[38;2;61;220;132m", // Android Green
	"\x1b[38;2;0;120;212m",  // Windows Blue
	"\x1b[38;2;204;51;17m",  // Momiji Red
	"\x1b[38;2;255;191;0m",  // Amber Orange
}

var bannerTitleColorNames = []string{
	"FlutterBlue",
	"DartTeal",
	"AndroidGreen",
	"WindowsBlue",
	"MomijiRed",
	"AmberOrange",
}

const (
	bannerTitleColorDefault        = bannerFlutterBlue
	bannerTitleColorBlueBackground = bannerAmberOrange
	bannerTitleColorEnv            = "NOKUBUILD_BANNER_COLOR"
)

var titleLines = []string{
	" ███╗   ██╗  ██████╗  ██╗  ██╗ ██╗   ██╗ ██████╗  ██╗   ██╗ ██╗ ██╗      ██████╗ ",
	" ████╗  ██║ ██╔═══██╗ ██║ ██╔╝ ██║   ██║ ██╔══██╗ ██║   ██║ ██║ ██║      ██╔══██╗",
	" ██╔██╗ ██║ ██║   ██║ █████╔╝  ██║   ██║ ██████╔╝ ██║   ██║ ██║ ██║      ██║  ██║",
	" ██║╚██╗██║ ██║   ██║ ██╔═██╗  ██║   ██║ ██╔══██╗ ██║   ██║ ██║ ██║      ██║  ██║",
	" ██║ ╚████║ ╚██████╔╝ ██║  ██╗ ╚██████╔╝ ██████╔╝ ╚██████╔╝ ██║ ███████╗ ██████╔╝",
	" ╚═╝  ╚═══╝  ╚═════╝  ╚═╝  ╚═╝  ╚═════╝  ╚═════╝   ╚═════╝  ╚═╝ ╚══════╝ ╚═════╝ ",
}

func printCenteredLines(w io.Writer, lines []string, width int) {
	for _, line := range lines {
		pad := 0

		if n := utf8.RuneCountInString(line); width > n {
			pad = (width - n) / 2
		}

		if pad > 0 {
			fmt.Fprint(w, strings.Repeat(" ", pad))
		}

		fmt.Fprintln(w, line)
	}
}

func bannerTitleColor() bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground() {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))

	if raw == "" {
		return 0, false
	}

	for idx, color := range bannerTitleColors {
		if strings.EqualFold(raw, bannerTitleColorNames[idx]) || raw == color {
			return bannerColor(idx), true
		}
	}

	return 0, false
}

// DrawBannerTitle prints the application title banner followed by the
// application name and version line. Callers enable ANSI output first.
func DrawBannerTitle(w io.Writer, subtitle string) {
	width := 80

	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = cols
	}

	fmt.Fprint(w, bannerTitleColors[bannerTitleColor()])
	printCenteredLines(w, titleLines, width)
	fmt.Fprint(w, "\x1b[0m")

	if subtitle != "" {
		printCenteredLines(w, []string{subtitle}, width)
	}
	fmt.Fprintln(w)
}
