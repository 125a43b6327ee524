package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/shortlabs/linkd/internal/domain"
	"github.com/shortlabs/linkd/internal/repository"
)

// Repository implements repository.LinkRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository and applies pending migrations
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for concurrent readers, busy timeout so concurrent writers
	// queue instead of failing with SQLITE_BUSY.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	repo := &Repository{db: db}

	if err := repo.runMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// CreateLink inserts a new link with zero clicks
func (r *Repository) CreateLink(ctx context.Context, code, url string, createdAt time.Time) (*domain.Link, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO links (code, url, clicks, created_at) VALUES (?, ?, 0, ?)",
		code, url, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return &domain.Link{
		Code:      code,
		URL:       url,
		Clicks:    0,
		CreatedAt: createdAt,
	}, nil
}

// GetLink retrieves a link by its code
func (r *Repository) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT code, url, clicks, last_clicked, created_at FROM links WHERE code = ?",
		code)

	link, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return link, nil
}

// GetAllLinks retrieves all links ordered by creation date (desc)
func (r *Repository) GetAllLinks(ctx context.Context) ([]*domain.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT code, url, clicks, last_clicked, created_at FROM links ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", err)
	}
	defer rows.Close()

	links := make([]*domain.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

// DeleteLink removes a link by its code and returns the deleted row
func (r *Repository) DeleteLink(ctx context.Context, code string) (*domain.Link, error) {
	row := r.db.QueryRowContext(ctx,
		"DELETE FROM links WHERE code = ? RETURNING code, url, clicks, last_clicked, created_at",
		code)

	link, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete link: %w", err)
	}

	return link, nil
}

// RecordClick atomically increments the click count, sets the last-clicked
// timestamp and returns the destination URL in a single statement
func (r *Repository) RecordClick(ctx context.Context, code string, clickedAt time.Time) (string, error) {
	var url string
	err := r.db.QueryRowContext(ctx,
		"UPDATE links SET clicks = clicks + 1, last_clicked = ? WHERE code = ? RETURNING url",
		clickedAt, code).Scan(&url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	return url, nil
}

// Close closes the repository connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (*domain.Link, error) {
	var link domain.Link
	var lastClicked sql.NullTime

	if err := s.Scan(&link.Code, &link.URL, &link.Clicks, &lastClicked, &link.CreatedAt); err != nil {
		return nil, err
	}
	if lastClicked.Valid {
		link.LastClicked = &lastClicked.Time
	}

	return &link, nil
}

// isUniqueViolation reports whether err is a SQLite unique or primary key
// constraint violation
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// Ensure Repository implements the interface
var _ repository.LinkRepository = (*Repository)(nil)
