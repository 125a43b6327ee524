package repository

import (
	"context"
	"time"

	"github.com/shortlabs/linkd/internal/domain"
)

// LinkRepository defines the interface for link persistence. Every method is
// a single atomic request against the backing store; callers never compose
// read-then-write sequences on top of it.
type LinkRepository interface {
	// CreateLink inserts a new link with zero clicks. Returns
	// domain.ErrDuplicateCode when the code already exists; the store's
	// uniqueness constraint is authoritative, never a prior read.
	CreateLink(ctx context.Context, code, url string, createdAt time.Time) (*domain.Link, error)

	// GetLink retrieves a link by its code. Returns domain.ErrNotFound when absent.
	GetLink(ctx context.Context, code string) (*domain.Link, error)

	// GetAllLinks retrieves all links ordered by creation date (desc).
	GetAllLinks(ctx context.Context) ([]*domain.Link, error)

	// DeleteLink removes a link by its code and returns the deleted row.
	// Returns domain.ErrNotFound when absent.
	DeleteLink(ctx context.Context, code string) (*domain.Link, error)

	// RecordClick atomically increments the click count and sets the
	// last-clicked timestamp, returning the destination URL, all in one
	// store operation. Returns domain.ErrNotFound when absent.
	RecordClick(ctx context.Context, code string, clickedAt time.Time) (string, error)

	// Close closes the repository connection.
	Close() error
}
