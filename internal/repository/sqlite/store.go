package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // remote libSQL / Turso
	_ "modernc.org/sqlite"                               // local files

	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS links (
	code             TEXT PRIMARY KEY,
	destination      TEXT NOT NULL UNIQUE,
	created_at       INTEGER NOT NULL,
	click_count      INTEGER NOT NULL DEFAULT 0,
	last_accessed_at INTEGER,
	owner_id         TEXT NOT NULL DEFAULT '',
	qr_payload       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS links_owner_created_idx ON links(owner_id, created_at);

CREATE TABLE IF NOT EXISTS clicks (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	code           TEXT NOT NULL,
	occurred_at    INTEGER NOT NULL,
	client_address TEXT NOT NULL DEFAULT '',
	client_agent   TEXT NOT NULL DEFAULT '',
	latency_ms     INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS clicks_code_occurred_at_idx ON clicks(code, occurred_at);
`

const linkColumns = `code, destination, created_at, click_count, last_accessed_at, owner_id, qr_payload`

// Store keeps links and clicks in SQLite. Timestamps are stored as unix
// milliseconds.
type Store struct {
	db *sql.DB
}

// Open connects to dbURL. libsql:// and wss:// URLs go through the libSQL
// client; anything else is treated as a local SQLite DSN.
func Open(ctx context.Context, dbURL string) (*Store, error) {
	driverName := "sqlite"
	if strings.HasPrefix(dbURL, "libsql://") || strings.HasPrefix(dbURL, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent redirects.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE code = ?`, code)
	return scanLink(row)
}

func (s *Store) FindByDestination(ctx context.Context, destination string) (*domain.ShortLink, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE destination = ?`, destination)
	return scanLink(row)
}

func (s *Store) Insert(ctx context.Context, link *domain.ShortLink) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO links (code, destination, created_at, click_count, owner_id, qr_payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		link.Code, link.Destination, link.CreatedAt.UnixMilli(), link.ClickCount, link.OwnerID, link.QRPayload)
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: links.code"):
		return repository.ErrDuplicateCode
	case strings.Contains(msg, "UNIQUE constraint failed: links.destination"):
		return repository.ErrDuplicateDestination
	}
	return fmt.Errorf("failed to insert link: %w", err)
}

func (s *Store) IncrementClicks(ctx context.Context, code string, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE links SET click_count = click_count + 1, last_accessed_at = ? WHERE code = ?`,
		at.UnixMilli(), code)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) ListLinks(ctx context.Context, ownerID string, limit int) ([]domain.ShortLink, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+linkColumns+` FROM links
		 WHERE ? = '' OR owner_id = ?
		 ORDER BY created_at DESC, code
		 LIMIT ?`,
		ownerID, ownerID, repository.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var links []domain.ShortLink
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (s *Store) CountLinks(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM links WHERE ? = '' OR owner_id = ?`, ownerID, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return n, nil
}

func (s *Store) SumClickCounts(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT coalesce(sum(click_count), 0) FROM links WHERE ? = '' OR owner_id = ?`, ownerID, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to sum click counts: %w", err)
	}
	return n, nil
}

func (s *Store) AppendClicks(ctx context.Context, events []domain.ClickEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin click batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO clicks (code, occurred_at, client_address, client_agent, latency_ms) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare click insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range events {
		if _, err := stmt.ExecContext(ctx,
			e.Code, e.Timestamp.UnixMilli(), e.ClientAddress, e.ClientAgent, max(0, e.RedirectLatencyMillis)); err != nil {
			return fmt.Errorf("failed to insert click: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit click batch: %w", err)
	}
	return nil
}

func (s *Store) RecentClicks(ctx context.Context, code string, limit int) ([]domain.ClickEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, code, occurred_at, client_address, client_agent, latency_ms
		 FROM clicks WHERE code = ?
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT ?`,
		code, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent clicks: %w", err)
	}
	return scanClicks(rows)
}

func (s *Store) RecentClicksByOwner(ctx context.Context, ownerID string, limit int) ([]domain.ClickEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.code, c.occurred_at, c.client_address, c.client_agent, c.latency_ms
		 FROM clicks c JOIN links l ON l.code = c.code
		 WHERE l.owner_id = ?
		 ORDER BY c.occurred_at DESC, c.id DESC
		 LIMIT ?`,
		ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner clicks: %w", err)
	}
	return scanClicks(rows)
}

func scanClicks(rows *sql.Rows) ([]domain.ClickEvent, error) {
	defer func() { _ = rows.Close() }()

	var events []domain.ClickEvent
	for rows.Next() {
		var e domain.ClickEvent
		var ts int64
		if err := rows.Scan(&e.ID, &e.Code, &ts, &e.ClientAddress, &e.ClientAgent, &e.RedirectLatencyMillis); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts).UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clicks: %w", err)
	}
	return events, nil
}

func (s *Store) ClickSummary(ctx context.Context, code string) (domain.ClickSummary, error) {
	var sum domain.ClickSummary
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*), coalesce(avg(latency_ms), 0.0) FROM clicks WHERE code = ?`, code).
		Scan(&sum.Total, &sum.AvgLatencyMillis)
	if err != nil {
		return domain.ClickSummary{}, fmt.Errorf("failed to summarize clicks: %w", err)
	}
	return sum, nil
}

func (s *Store) CountClicks(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	var err error
	if ownerID == "" {
		err = s.db.QueryRowContext(ctx, `SELECT count(*) FROM clicks`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM clicks c JOIN links l ON l.code = c.code WHERE l.owner_id = ?`,
			ownerID).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(row scanner) (*domain.ShortLink, error) {
	var link domain.ShortLink
	var createdAt int64
	var lastAccessed sql.NullInt64

	err := row.Scan(&link.Code, &link.Destination, &createdAt, &link.ClickCount,
		&lastAccessed, &link.OwnerID, &link.QRPayload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan link: %w", err)
	}

	link.CreatedAt = time.UnixMilli(createdAt).UTC()
	if lastAccessed.Valid {
		t := time.UnixMilli(lastAccessed.Int64).UTC()
		link.LastAccessedAt = &t
	}
	return &link, nil
}
