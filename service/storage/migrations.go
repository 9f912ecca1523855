package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS releases (
    release_id        INTEGER PRIMARY KEY AUTOINCREMENT,
    app               TEXT NOT NULL,
    from_version      TEXT NOT NULL,
    to_version        TEXT NOT NULL,
    selector          TEXT,
    bumped            INTEGER NOT NULL DEFAULT 0,
    cancelled         INTEGER NOT NULL DEFAULT 0,
    release_timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
    duration_ms       INTEGER DEFAULT 0,
    succeeded_targets INTEGER DEFAULT 0,
    failed_targets    INTEGER DEFAULT 0,
    cli_version       TEXT,
    cli_flags         TEXT
);

CREATE INDEX IF NOT EXISTS idx_releases_app_timestamp
    ON releases(app, release_timestamp);
CREATE INDEX IF NOT EXISTS idx_releases_timestamp
    ON releases(release_timestamp DESC);

CREATE TABLE IF NOT EXISTS release_files (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    release_id    INTEGER NOT NULL,
    path          TEXT NOT NULL,
    replacements  INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (release_id) REFERENCES releases(release_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_release_files_release ON release_files(release_id);

CREATE TABLE IF NOT EXISTS release_targets (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    release_id    INTEGER NOT NULL,
    position      INTEGER NOT NULL,
    name          TEXT NOT NULL,
    command       TEXT NOT NULL,
    status        TEXT NOT NULL,
    duration_ms   INTEGER DEFAULT 0,
    output_dir    TEXT,
    FOREIGN KEY (release_id) REFERENCES releases(release_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_release_targets_release ON release_targets(release_id);
CREATE INDEX IF NOT EXISTS idx_release_targets_status ON release_targets(status);
`
