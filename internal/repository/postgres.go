package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlink/internal/domain"
)

const (
	uniqueViolation        = "23505"
	linksPrimaryKey        = "links_pkey"
	linksDestinationUnique = "links_destination_key"
)

const linkColumns = `code, destination, created_at, click_count, last_accessed_at, coalesce(owner_id, ''), qr_payload`

type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(ctx context.Context, databaseURL string, maxConns int32) (*LinkRepository, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &LinkRepository{pool: pool}, nil
}

// PoolStats is a snapshot of connection pool usage.
type PoolStats struct {
	Acquired int
	Idle     int
	Total    int
	Max      int
}

func (r *LinkRepository) PoolStats() PoolStats {
	s := r.pool.Stat()
	return PoolStats{
		Acquired: int(s.AcquiredConns()),
		Idle:     int(s.IdleConns()),
		Total:    int(s.TotalConns()),
		Max:      int(s.MaxConns()),
	}
}

func (r *LinkRepository) Close() error {
	r.pool.Close()
	return nil
}

func (r *LinkRepository) FindByCode(ctx context.Context, code string) (*domain.ShortLink, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+linkColumns+` FROM links WHERE code = $1`, code)
	return scanLink(row)
}

func (r *LinkRepository) FindByDestination(ctx context.Context, destination string) (*domain.ShortLink, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+linkColumns+` FROM links WHERE md5(destination) = md5($1) AND destination = $1`,
		destination)
	return scanLink(row)
}

func (r *LinkRepository) Insert(ctx context.Context, link *domain.ShortLink) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO links (code, destination, created_at, click_count, owner_id, qr_payload)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`,
		link.Code, link.Destination, link.CreatedAt, link.ClickCount, link.OwnerID, link.QRPayload)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case linksPrimaryKey:
			return ErrDuplicateCode
		case linksDestinationUnique:
			return ErrDuplicateDestination
		}
	}
	return fmt.Errorf("failed to insert link: %w", err)
}

func (r *LinkRepository) IncrementClicks(ctx context.Context, code string, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE links SET click_count = click_count + 1, last_accessed_at = $2 WHERE code = $1`,
		code, at)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LinkRepository) ListLinks(ctx context.Context, ownerID string, limit int) ([]domain.ShortLink, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+linkColumns+` FROM links
		 WHERE $1::text = '' OR owner_id = $1
		 ORDER BY created_at DESC, code
		 LIMIT $2`,
		ownerID, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

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

func (r *LinkRepository) CountLinks(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM links WHERE $1::text = '' OR owner_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return n, nil
}

func (r *LinkRepository) SumClickCounts(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT coalesce(sum(click_count), 0)::bigint FROM links WHERE $1::text = '' OR owner_id = $1`,
		ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to sum click counts: %w", err)
	}
	return n, nil
}

func (r *LinkRepository) AppendClicks(ctx context.Context, events []domain.ClickEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([][]any, len(events))
	for i, e := range events {
		rows[i] = []any{e.Code, e.Timestamp, e.ClientAddress, e.ClientAgent, max(0, e.RedirectLatencyMillis)}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"clicks"},
		[]string{"code", "occurred_at", "client_address", "client_agent", "latency_ms"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to append clicks: %w", err)
	}
	return nil
}

func (r *LinkRepository) RecentClicks(ctx context.Context, code string, limit int) ([]domain.ClickEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, occurred_at, client_address, client_agent, latency_ms
		 FROM clicks WHERE code = $1
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT $2`,
		code, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent clicks: %w", err)
	}
	return collectClicks(rows)
}

func (r *LinkRepository) RecentClicksByOwner(ctx context.Context, ownerID string, limit int) ([]domain.ClickEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.code, c.occurred_at, c.client_address, c.client_agent, c.latency_ms
		 FROM clicks c JOIN links l ON l.code = c.code
		 WHERE l.owner_id = $1
		 ORDER BY c.occurred_at DESC, c.id DESC
		 LIMIT $2`,
		ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner clicks: %w", err)
	}
	return collectClicks(rows)
}

func collectClicks(rows pgx.Rows) ([]domain.ClickEvent, error) {
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClickEvent, error) {
		var e domain.ClickEvent
		err := row.Scan(&e.ID, &e.Code, &e.Timestamp, &e.ClientAddress, &e.ClientAgent, &e.RedirectLatencyMillis)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clicks: %w", err)
	}
	return events, nil
}

func (r *LinkRepository) ClickSummary(ctx context.Context, code string) (domain.ClickSummary, error) {
	var s domain.ClickSummary
	err := r.pool.QueryRow(ctx,
		`SELECT count(*), coalesce(avg(latency_ms), 0)::float8 FROM clicks WHERE code = $1`,
		code).Scan(&s.Total, &s.AvgLatencyMillis)
	if err != nil {
		return domain.ClickSummary{}, fmt.Errorf("failed to summarize clicks: %w", err)
	}
	return s, nil
}

func (r *LinkRepository) CountClicks(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	var err error
	if ownerID == "" {
		err = r.pool.QueryRow(ctx, `SELECT count(*) FROM clicks`).Scan(&n)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT count(*) FROM clicks c JOIN links l ON l.code = c.code WHERE l.owner_id = $1`,
			ownerID).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return n, nil
}

func scanLink(row pgx.Row) (*domain.ShortLink, error) {
	var link domain.ShortLink
	err := row.Scan(
		&link.Code, &link.Destination, &link.CreatedAt, &link.ClickCount,
		&link.LastAccessedAt, &link.OwnerID, &link.QRPayload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan link: %w", err)
	}
	return &link, nil
}
