package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shortlabs/linkd/internal/domain"
)

// LinkService is a mock implementation of service.LinkService
type LinkService struct {
	mock.Mock
}

// CreateLink registers a destination URL under a custom or generated code
func (m *LinkService) CreateLink(ctx context.Context, url, customCode string) (*domain.Link, string, error) {
	args := m.Called(ctx, url, customCode)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Link), args.String(1), args.Error(2)
}

// GetLink retrieves a link by its code
func (m *LinkService) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// ListLinks returns all links, newest first
func (m *LinkService) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// DeleteLink removes a link and returns the deleted code
func (m *LinkService) DeleteLink(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// Resolve records a click and returns the destination URL
func (m *LinkService) Resolve(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// Close closes the service and its dependencies
func (m *LinkService) Close() error {
	args := m.Called()
	return args.Error(0)
}
