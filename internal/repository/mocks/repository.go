package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/shortlabs/linkd/internal/domain"
)

// LinkRepository is a mock implementation of repository.LinkRepository
type LinkRepository struct {
	mock.Mock
}

// CreateLink inserts a new link with zero clicks
func (m *LinkRepository) CreateLink(ctx context.Context, code, url string, createdAt time.Time) (*domain.Link, error) {
	args := m.Called(ctx, code, url, createdAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// GetLink retrieves a link by its code
func (m *LinkRepository) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// GetAllLinks retrieves all links ordered by creation date (desc)
func (m *LinkRepository) GetAllLinks(ctx context.Context) ([]*domain.Link, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// DeleteLink removes a link by its code and returns the deleted row
func (m *LinkRepository) DeleteLink(ctx context.Context, code string) (*domain.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// RecordClick atomically increments the click count and returns the destination URL
func (m *LinkRepository) RecordClick(ctx context.Context, code string, clickedAt time.Time) (string, error) {
	args := m.Called(ctx, code, clickedAt)
	return args.String(0), args.Error(1)
}

// Close closes the repository connection
func (m *LinkRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
