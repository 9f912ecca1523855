package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nokutoka/nokubuild/model"
	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.nokubuild/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRelease(ctx context.Context, input SaveReleaseInput) (releaseID int64, err error) {
	if input.App == "" {
		return 0, errors.New("app name is required")
	}

	succeeded, failed := 0, 0
	for _, t := range input.Targets {
		switch t.Status {
		case model.StatusSuccess:
			succeeded++
		case model.StatusFailed:
			failed++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO releases (
			app, from_version, to_version, selector, bumped, cancelled,
			duration_ms, succeeded_targets, failed_targets,
			cli_version, cli_flags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.App, input.FromVersion, input.ToVersion, input.Selector, input.Bumped, input.Cancelled,
		input.DurationMS, succeeded, failed,
		input.CLIVersion, input.FlagsJSON)
	if err != nil {
		return 0, err
	}
	releaseID, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, f := range input.Files {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO release_files (release_id, path, replacements) VALUES (?, ?, ?)
		`, releaseID, f.Path, f.Replacements); err != nil {
			return 0, err
		}
	}
	for i, t := range input.Targets {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO release_targets (release_id, position, name, command, status, duration_ms, output_dir)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, releaseID, i, t.Name, t.Command, t.Status, t.DurationMS, t.OutputDir); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return releaseID, nil
}

func (s *service) GetRecentReleases(app string, limit int) ([]ReleaseRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT r.release_id, r.app, r.from_version, r.to_version, COALESCE(r.selector, ''),
			r.bumped, r.cancelled, r.release_timestamp, r.duration_ms,
			r.succeeded_targets, r.failed_targets, COALESCE(r.cli_version, ''),
			(SELECT COUNT(*) FROM release_files f WHERE f.release_id = r.release_id AND f.replacements > 0)
		FROM releases r
		WHERE (? = '' OR r.app = ?)
		ORDER BY r.release_id DESC
		LIMIT ?
	`, app, app, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReleaseRecord
	for rows.Next() {
		var r ReleaseRecord
		if err := rows.Scan(&r.ReleaseID, &r.App, &r.FromVersion, &r.ToVersion, &r.Selector,
			&r.Bumped, &r.Cancelled, &r.ReleaseTimestamp, &r.DurationMS,
			&r.SucceededTargets, &r.FailedTargets, &r.CLIVersion, &r.FilesChanged); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *service) ListTargets(releaseID int64) ([]TargetRecord, error) {
	rows, err := s.db.Query(`
		SELECT name, command, status, duration_ms, COALESCE(output_dir, '')
		FROM release_targets
		WHERE release_id = ?
		ORDER BY position
	`, releaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TargetRecord
	for rows.Next() {
		var t TargetRecord
		if err := rows.Scan(&t.Name, &t.Command, &t.Status, &t.DurationMS, &t.OutputDir); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM releases WHERE release_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
