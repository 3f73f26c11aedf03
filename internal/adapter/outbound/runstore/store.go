package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS detection_runs (
	id                  TEXT PRIMARY KEY,
	started_at          TEXT NOT NULL,
	build_mode          TEXT NOT NULL,
	constraints_indexed INTEGER NOT NULL,
	constraints_dropped INTEGER NOT NULL,
	events_classified   INTEGER NOT NULL,
	conflicts_found     INTEGER NOT NULL,
	build_duration_ns   INTEGER NOT NULL,
	classify_duration_ns INTEGER NOT NULL
);
`

// Store persists DetectionRun rows to a sqlite file. Writes take an
// in-process mutex plus a cross-process flock on path+".lock", mirroring
// the teacher's FileStateStore write sequence, since several CLI
// invocations may write to the same run-history file at once.
type Store struct {
	path   string
	mu     sync.Mutex
	db     *sql.DB
	logger *slog.Logger
}

// Open creates (if necessary) and opens the sqlite database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runstore: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("runstore: creating schema: %w", err)
	}
	return &Store{path: path, db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one DetectionRun, holding both the in-process mutex and a
// cross-process flock on path+".lock" for the duration of the write.
func (s *Store) Record(ctx context.Context, run DetectionRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile()
	if err != nil {
		return err
	}
	defer unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO detection_runs (
			id, started_at, build_mode, constraints_indexed, constraints_dropped,
			events_classified, conflicts_found, build_duration_ns, classify_duration_ns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.Format("2006-01-02T15:04:05.000000Z"), run.BuildMode,
		run.ConstraintsIndexed, run.ConstraintsDropped, run.EventsClassified,
		run.ConflictsFound, run.BuildDuration.Nanoseconds(), run.ClassifyDuration.Nanoseconds(),
	)
	if err != nil {
		return fmt.Errorf("runstore: inserting run %s: %w", run.ID, err)
	}
	return nil
}

// lockFile acquires the cross-process flock on s.path+".lock" and returns
// a function that releases it and closes the lock file.
func (s *Store) lockFile() (func(), error) {
	lockPath := s.path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("runstore: opening lock file: %w", err)
	}
	if err := flockLock(f.Fd()); err != nil {
		f.Close()
		return nil, fmt.Errorf("runstore: acquiring lock: %w", err)
	}
	return func() {
		if err := flockUnlock(f.Fd()); err != nil {
			s.logger.Warn("runstore: releasing lock", "error", err)
		}
		f.Close()
	}, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM detection_runs`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("runstore: counting runs: %w", err)
	}
	return n, nil
}
