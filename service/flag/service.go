package flag

import (
	"fmt"
	"os"

	"github.com/nokutoka/nokubuild/model"
	"github.com/spf13/pflag"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses the command-line flags and the optional positional
// token: "noup" to build without bumping, or a version selector.
func (s *service) GetParsedFlags() (model.Flags, error) {
	configPath := pflag.StringP("config", "c", "", "Path to the release config file (default .nokubuild.yaml)")
	from := pflag.String("from", "", "Current version to bump from instead of reading the manifest")
	noBuild := pflag.Bool("no-build", false, "Update the version without running the build targets")
	noOpen := pflag.Bool("no-open", false, "Do not open output folders after a successful build")
	quiet := pflag.BoolP("quiet", "q", false, "Hide build tool output and show a spinner instead")
	output := pflag.StringP("output", "o", "table", "Summary output format (table or json)")
	store := pflag.Bool("store", false, "Record the release in the local SQLite history")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.nokubuild/history.db)")
	version := pflag.BoolP("version", "v", false, "Show version information")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nokubuild [flags] [noup|r|m|M]\n\n")
		fmt.Fprintf(os.Stderr, "  r     increment revision (default)\n")
		fmt.Fprintf(os.Stderr, "  m     increment minor, reset revision\n")
		fmt.Fprintf(os.Stderr, "  M     increment major, reset minor and revision\n")
		fmt.Fprintf(os.Stderr, "  noup  build without changing the version\n\n")
		fmt.Fprintf(os.Stderr, "Subcommands: history, db\n\nFlags:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	args := pflag.Args()
	if len(args) > 1 {
		return model.Flags{}, fmt.Errorf("expected at most one argument, got %d: %v", len(args), args)
	}

	if *output != "table" && *output != "json" {
		return model.Flags{}, fmt.Errorf("unsupported output format %q (use table or json)", *output)
	}

	flags := model.Flags{
		From:       *from,
		ConfigPath: *configPath,
		NoBuild:    *noBuild,
		NoOpen:     *noOpen,
		Quiet:      *quiet,
		Output:     *output,
		Store:      *store,
		DBPath:     *dbPath,
		Version:    *version,
	}

	if len(args) == 1 {
		if args[0] == model.SkipToken {
			flags.NoBump = true
		} else {
			flags.Selector = args[0]
		}
	}

	return flags, nil
}
