// Package main is the entry point for the nokubuild application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/build"
	"github.com/nokutoka/nokubuild/service/config"
	"github.com/nokutoka/nokubuild/service/flag"
	"github.com/nokutoka/nokubuild/service/orchestrator"
	"github.com/nokutoka/nokubuild/service/output"
	"github.com/nokutoka/nokubuild/service/storage"
	"github.com/nokutoka/nokubuild/utils/ansi"
	"github.com/nokutoka/nokubuild/utils/banner"
	"github.com/nokutoka/nokubuild/utils/console"
	"github.com/nokutoka/nokubuild/utils/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, build.ErrCancelled) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "history", "db":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		fmt.Printf("nokubuild %s (commit %s, built %s)\n", versionInfo.Version, versionInfo.Commit, versionInfo.Date)
		return nil
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	// In JSON mode stdout carries only the summary document.
	var consoleOut io.Writer = os.Stdout
	if flags.Output == "json" {
		consoleOut = os.Stderr
		logger.SetOutput(os.Stderr)
	}
	jsonMode := flags.Output == "json"
	colors := useColors(ansi.EnableANSI(), console.IsInteractive(os.Stdout), console.IsInteractive(os.Stderr), jsonMode)
	logger.SetColors(colors)

	if colors && !jsonMode {
		banner.DrawBannerTitle(os.Stdout, fmt.Sprintf("%s release tool %s", cfg.AppName, versionInfo.Version))
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	orchestratorService := orchestrator.NewService(
		cfg,
		build.NewService(build.NewExecExecutor()),
		output.NewService(flags.Output),
		storageService,
		versionInfo,
		consoleOut,
	)

	_, err = orchestratorService.Orchestrate(context.Background(), flags)
	return err
}

// useColors reports whether console lines may carry escape sequences. In
// JSON mode the console is stderr.
func useColors(ansiOK, stdoutTTY, stderrTTY, jsonMode bool) bool {
	if !ansiOK {
		return false
	}
	if jsonMode {
		return stderrTTY
	}
	return stdoutTTY
}
