package flag

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
)

func resetFlagState(t *testing.T, args []string) func() {
	t.Helper()
	oldCommandLine := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet("test", pflag.ContinueOnError)
	os.Args = append([]string{"nokubuild"}, args...)
	return func() {
		pflag.CommandLine = oldCommandLine
		os.Args = oldArgs
	}
}

func TestGetParsedFlagsAllOptions(t *testing.T) {
	cleanup := resetFlagState(t, []string{
		"--config", "release.yaml",
		"--from", "1.1.1",
		"--no-build",
		"--no-open",
		"--quiet",
		"--output", "json",
		"--store",
		"--db-path", "/tmp/history.db",
		"m",
	})
	defer cleanup()

	flags, err := NewService().GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.ConfigPath != "release.yaml" || flags.From != "1.1.1" {
		t.Fatalf("unexpected config/from: %+v", flags)
	}
	if !flags.NoBuild || !flags.NoOpen || !flags.Quiet {
		t.Fatalf("unexpected build flags: %+v", flags)
	}
	if flags.Output != "json" || !flags.Store || flags.DBPath != "/tmp/history.db" {
		t.Fatalf("unexpected output/storage flags: %+v", flags)
	}
	if flags.Selector != "m" || flags.NoBump {
		t.Fatalf("unexpected selector: %+v", flags)
	}
}

func TestGetParsedFlagsDefaults(t *testing.T) {
	cleanup := resetFlagState(t, nil)
	defer cleanup()

	flags, err := NewService().GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.Output != "table" || flags.Selector != "" || flags.NoBump {
		t.Fatalf("unexpected defaults: %+v", flags)
	}
	if flags.Store || flags.Quiet || flags.NoBuild || flags.Version {
		t.Fatalf("unexpected boolean defaults: %+v", flags)
	}
}

func TestGetParsedFlagsSkipToken(t *testing.T) {
	cleanup := resetFlagState(t, []string{"noup"})
	defer cleanup()

	flags, err := NewService().GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}
	if !flags.NoBump || flags.Selector != "" {
		t.Fatalf("expected noup to skip the bump: %+v", flags)
	}
}

func TestGetParsedFlagsUnknownSelectorIsPassedThrough(t *testing.T) {
	cleanup := resetFlagState(t, []string{"x"})
	defer cleanup()

	flags, err := NewService().GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}
	if flags.Selector != "x" {
		t.Fatalf("selector should be validated by the version service, got %+v", flags)
	}
}

func TestGetParsedFlagsRejectsExtraArguments(t *testing.T) {
	cleanup := resetFlagState(t, []string{"r", "m"})
	defer cleanup()

	if _, err := NewService().GetParsedFlags(); err == nil {
		t.Fatalf("expected error for two positional arguments")
	}
}

func TestGetParsedFlagsRejectsUnknownOutput(t *testing.T) {
	cleanup := resetFlagState(t, []string{"--output", "html"})
	defer cleanup()

	if _, err := NewService().GetParsedFlags(); err == nil {
		t.Fatalf("expected error for unsupported output format")
	}
}
