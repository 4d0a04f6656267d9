package feed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"photofix/internal/config"
)

var (
	// ErrPendingExists is returned when a second pending upload would be
	// created while one is already mid-processing.
	ErrPendingExists = errors.New("an upload is already processing")
	// ErrSessionLocked is returned when another process owns the session.
	ErrSessionLocked = errors.New("session is in use by another photofix process")
)

// Store manages the session feed backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the session feed database and applies
// migrations. The session lock guarantees a single live owner per session
// directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.SessionDir, "session.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !locked {
		return nil, ErrSessionLocked
	}

	dbPath := filepath.Join(cfg.Paths.SessionDir, "feed.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	if _, err := store.ReclaimStalePending(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// ReclaimStalePending removes pending rows left behind by a process that
// died mid-cycle. The session lock guarantees no live controller owns a
// pending row at open time, so any found here is an orphan; a wedged row
// would otherwise block every new upload. Returns the number of rows
// reclaimed.
func (s *Store) ReclaimStalePending(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM photos WHERE status = ?`,
		StatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("reclaim stale pending rows: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the database connection and the session lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// NewUploadParams carries the fields captured at submit time.
type NewUploadParams struct {
	OriginalURL  string
	FixedURL     string
	Instructions string
	FileSize     string
	Model        string
}

// NewUpload inserts the pending record for a freshly submitted upload.
// Exactly one pending record may exist at a time.
func (s *Store) NewUpload(ctx context.Context, params NewUploadParams) (*Photo, error) {
	if params.OriginalURL == "" || params.FixedURL == "" {
		return nil, errors.New("upload requires original and fixed locators")
	}

	pending, err := s.Pending(ctx)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, ErrPendingExists
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO photos (
            origin, status, original_url, fixed_url, instructions,
            timestamp_label, dimensions, file_size, model,
            progress_percent, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		OriginUpload,
		StatusPending,
		params.OriginalURL,
		params.FixedURL,
		nullableString(params.Instructions),
		ProcessingLabel,
		ProcessingLabel,
		params.FileSize,
		params.Model,
		0.0,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert upload: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// UpdateProgress persists a new progress percentage for the pending record.
func (s *Store) UpdateProgress(ctx context.Context, id int64, percent float64) error {
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE photos SET progress_percent = ?, updated_at = ? WHERE id = ? AND status = ?`,
		percent,
		time.Now().UTC().Format(time.RFC3339Nano),
		id,
		StatusPending,
	)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// MarkCompleted publishes a pending record: the timestamp flips to the
// just-now label, dimensions resolve to the probed value, and progress
// resets. Returns nil when the record is not pending.
func (s *Store) MarkCompleted(ctx context.Context, id int64, dimensions string) (*Photo, error) {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE photos SET status = ?, timestamp_label = ?, dimensions = ?, progress_percent = 0, updated_at = ?
         WHERE id = ? AND status = ?`,
		StatusCompleted,
		JustNowLabel,
		dimensions,
		time.Now().UTC().Format(time.RFC3339Nano),
		id,
		StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("mark completed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return s.GetByID(ctx, id)
}

// ToggleFavorite flips the favorited flag on the identified record. Unknown
// ids are a safe no-op returning nil.
func (s *Store) ToggleFavorite(ctx context.Context, id int64) (*Photo, error) {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE photos SET favorited = 1 - favorited, updated_at = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches a record by identifier, returning nil when absent.
func (s *Store) GetByID(ctx context.Context, id int64) (*Photo, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = ?`, id)
	photo, err := scanPhoto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return photo, nil
}

// Pending returns the in-flight record, or nil when the controller is idle.
func (s *Store) Pending(ctx context.Context) (*Photo, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+photoColumns+` FROM photos WHERE status = ? LIMIT 1`, StatusPending)
	photo, err := scanPhoto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pending photo: %w", err)
	}
	return photo, nil
}

// ListOptions narrows List results.
type ListOptions struct {
	FavoritesOnly bool
}

// List returns the feed in presentation order: the pending record first,
// then completed uploads newest-first, then the sample gallery in seed order.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]*Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos`
	if opts.FavoritesOnly {
		query += ` WHERE favorited = 1`
	}
	query += ` ORDER BY
        CASE WHEN status = 'pending' THEN 0 WHEN origin = 'upload' THEN 1 ELSE 2 END,
        CASE WHEN origin = 'sample' THEN id ELSE -id END`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

// SampleParams carries one seeded gallery record.
type SampleParams struct {
	OriginalURL    string
	FixedURL       string
	VideoURL       string
	Instructions   string
	TimestampLabel string
	Dimensions     string
	FileSize       string
	Model          string
}

// InsertSample inserts a completed sample-gallery record.
func (s *Store) InsertSample(ctx context.Context, params SampleParams) (*Photo, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO photos (
            origin, status, original_url, fixed_url, video_url, instructions,
            timestamp_label, dimensions, file_size, model,
            progress_percent, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		OriginSample,
		StatusCompleted,
		params.OriginalURL,
		params.FixedURL,
		nullableString(params.VideoURL),
		nullableString(params.Instructions),
		params.TimestampLabel,
		params.Dimensions,
		params.FileSize,
		params.Model,
		0.0,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert sample: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Summary describes aggregated feed counts.
type Summary struct {
	Total     int
	Pending   int
	Completed int
	Uploads   int
	Samples   int
	Favorited int
}

// Stats returns aggregated feed counts for status displays.
func (s *Store) Stats(ctx context.Context) (Summary, error) {
	var summary Summary
	err := s.db.QueryRowContext(ctx, `SELECT
            COUNT(1),
            COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN origin = 'upload' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN origin = 'sample' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(favorited), 0)
        FROM photos`).Scan(
		&summary.Total,
		&summary.Pending,
		&summary.Completed,
		&summary.Uploads,
		&summary.Samples,
		&summary.Favorited,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("feed stats: %w", err)
	}
	return summary, nil
}

const photoColumns = `id, origin, status, original_url, fixed_url, video_url, instructions,
    timestamp_label, dimensions, file_size, model, favorited, progress_percent, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhoto(row rowScanner) (*Photo, error) {
	var (
		photo        Photo
		videoURL     sql.NullString
		instructions sql.NullString
		createdAt    string
		updatedAt    string
	)
	err := row.Scan(
		&photo.ID,
		&photo.Origin,
		&photo.Status,
		&photo.OriginalURL,
		&photo.FixedURL,
		&videoURL,
		&instructions,
		&photo.TimestampLabel,
		&photo.Dimensions,
		&photo.FileSize,
		&photo.Model,
		&photo.Favorited,
		&photo.ProgressPercent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	photo.VideoURL = videoURL.String
	photo.Instructions = instructions.String
	photo.CreatedAt = parseTimestamp(createdAt)
	photo.UpdatedAt = parseTimestamp(updatedAt)
	return &photo, nil
}

func parseTimestamp(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
