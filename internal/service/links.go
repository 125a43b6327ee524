package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shortlabs/linkd/internal/domain"
	"github.com/shortlabs/linkd/internal/repository"
	"github.com/shortlabs/linkd/internal/shortener"
	"github.com/shortlabs/linkd/internal/validate"
)

// linkService implements LinkService
type linkService struct {
	repo      repository.LinkRepository
	generator shortener.Generator
	baseURL   string
}

// NewLinkService creates a new link service. baseURL is the public address
// short URLs are built from.
func NewLinkService(repo repository.LinkRepository, generator shortener.Generator, baseURL string) LinkService {
	return &linkService{
		repo:      repo,
		generator: generator,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// CreateLink validates the destination, takes or generates a code and inserts
// the link. Conflicts come from the store's uniqueness constraint, never from
// a pre-check, and are surfaced without retrying generation.
func (s *linkService) CreateLink(ctx context.Context, url, customCode string) (*domain.Link, string, error) {
	if !validate.URL(url) {
		return nil, "", domain.ErrInvalidURL
	}

	code := customCode
	if code != "" {
		if !validate.Code(code) {
			return nil, "", domain.ErrInvalidCode
		}
	} else {
		generated, err := s.generator.GenerateCode(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate code: %w", err)
		}
		code = generated
	}

	link, err := s.repo.CreateLink(ctx, code, url, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCode) {
			return nil, "", domain.ErrCodeConflict
		}
		return nil, "", fmt.Errorf("failed to create link: %w", err)
	}

	return link, s.shortURL(link.Code), nil
}

// GetLink retrieves a link by its code
func (s *linkService) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	if !validate.Code(code) {
		return nil, domain.ErrInvalidCode
	}

	link, err := s.repo.GetLink(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return link, nil
}

// ListLinks returns all links, newest first
func (s *linkService) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	links, err := s.repo.GetAllLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// DeleteLink removes a link and returns the deleted code
func (s *linkService) DeleteLink(ctx context.Context, code string) (string, error) {
	if !validate.Code(code) {
		return "", domain.ErrInvalidCode
	}

	deleted, err := s.repo.DeleteLink(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to delete link: %w", err)
	}

	return deleted.Code, nil
}

// Resolve records a click and returns the destination URL. Malformed codes
// are reported as not found so the redirect path never leaks format errors.
func (s *linkService) Resolve(ctx context.Context, code string) (string, error) {
	if !validate.Code(code) {
		return "", domain.ErrNotFound
	}

	url, err := s.repo.RecordClick(ctx, code, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	return url, nil
}

// Close closes the service and its dependencies
func (s *linkService) Close() error {
	if err := s.generator.Close(); err != nil {
		return fmt.Errorf("failed to close generator: %w", err)
	}
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	return nil
}

func (s *linkService) shortURL(code string) string {
	return s.baseURL + "/" + code
}

// Ensure linkService implements LinkService interface
var _ LinkService = (*linkService)(nil)
