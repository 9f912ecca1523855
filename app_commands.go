package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nokutoka/nokubuild/service/output"
	"github.com/nokutoka/nokubuild/service/storage"
	"github.com/spf13/pflag"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 90, "Purge releases older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: nokubuild db <vacuum|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return dbCommand(context.Background(), store, rest[0], *olderThan)
}

func dbCommand(ctx context.Context, store storage.Service, sub string, olderThan int) error {
	switch sub {
	case "vacuum":
		return store.Vacuum(ctx)
	case "purge":
		count, err := store.PurgeOlderThan(ctx, olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d releases\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	app := fs.String("app", "", "Application name filter")
	limit := fs.Int("limit", 20, "Number of releases to list")
	format := fs.StringP("output", "o", "table", "Output format (table or json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return historyCommand(store, output.NewService(*format), fs.Args(), *app, *limit)
}

func historyCommand(store storage.Service, out output.Service, rest []string, app string, limit int) error {
	sub := "list"
	if len(rest) > 0 {
		sub = rest[0]
	}

	switch sub {
	case "list":
		releases, err := store.GetRecentReleases(app, limit)
		if err != nil {
			return err
		}
		return out.RenderHistory(releases)
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("usage: nokubuild history show <release-id>")
		}
		releaseID, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid release id %q: %w", rest[1], err)
		}
		targets, err := store.ListTargets(releaseID)
		if err != nil {
			return err
		}
		return out.RenderTargets(releaseID, targets)
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}
