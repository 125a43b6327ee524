package service

import (
	"context"

	"github.com/shortlabs/linkd/internal/domain"
)

// LinkService defines the short-link lifecycle operations
type LinkService interface {
	// CreateLink registers a destination URL under customCode, or under a
	// freshly generated code when customCode is empty. Returns the created
	// link and its public short URL.
	CreateLink(ctx context.Context, url, customCode string) (*domain.Link, string, error)

	// GetLink retrieves a link by its code
	GetLink(ctx context.Context, code string) (*domain.Link, error)

	// ListLinks returns all links, newest first
	ListLinks(ctx context.Context) ([]*domain.Link, error)

	// DeleteLink removes a link and returns the deleted code
	DeleteLink(ctx context.Context, code string) (string, error)

	// Resolve records a click and returns the destination URL to redirect to
	Resolve(ctx context.Context, code string) (string, error)

	// Close closes the service and its dependencies
	Close() error
}
