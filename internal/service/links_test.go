package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shortlabs/linkd/internal/domain"
	repoMocks "github.com/shortlabs/linkd/internal/repository/mocks"
)

func TestLinkService_CreateLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		url        string
		customCode string
		setupMocks func(*repoMocks.LinkRepository)
		wantCode   string
		wantErr    error
	}{
		{
			name: "successful creation with generated code",
			url:  "https://example.com",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("CreateLink", ctx, "test0001", "https://example.com", mock.AnythingOfType("time.Time")).
					Return(&domain.Link{
						Code:      "test0001",
						URL:       "https://example.com",
						Clicks:    0,
						CreatedAt: time.Now().UTC(),
					}, nil)
			},
			wantCode: "test0001",
		},
		{
			name:       "successful creation with custom code",
			url:        "https://example.com",
			customCode: "MYCODE1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("CreateLink", ctx, "MYCODE1", "https://example.com", mock.AnythingOfType("time.Time")).
					Return(&domain.Link{
						Code:      "MYCODE1",
						URL:       "https://example.com",
						Clicks:    0,
						CreatedAt: time.Now().UTC(),
					}, nil)
			},
			wantCode: "MYCODE1",
		},
		{
			name:       "invalid URL",
			url:        "not-a-url",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrInvalidURL,
		},
		{
			name:       "invalid custom code",
			url:        "https://example.com",
			customCode: "ab",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrInvalidCode,
		},
		{
			name:       "custom code conflict",
			url:        "https://example.com",
			customCode: "MYCODE1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("CreateLink", ctx, "MYCODE1", "https://example.com", mock.AnythingOfType("time.Time")).
					Return(nil, domain.ErrDuplicateCode)
			},
			wantErr: domain.ErrCodeConflict,
		},
		{
			name: "generated code conflict surfaces without retry",
			url:  "https://example.com",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("CreateLink", ctx, "test0001", "https://example.com", mock.AnythingOfType("time.Time")).
					Return(nil, domain.ErrDuplicateCode)
			},
			wantErr: domain.ErrCodeConflict,
		},
		{
			name: "repository error",
			url:  "https://example.com",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("CreateLink", ctx, "test0001", "https://example.com", mock.AnythingOfType("time.Time")).
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMocks.LinkRepository{}
			tt.setupMocks(repo)

			gen := NewTestGenerator()
			svc := NewLinkService(repo, gen, "http://localhost:8080")

			link, shortURL, err := svc.CreateLink(ctx, tt.url, tt.customCode)

			if tt.wantCode != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCode, link.Code)
				assert.Equal(t, tt.url, link.URL)
				assert.Equal(t, "http://localhost:8080/"+tt.wantCode, shortURL)
			} else {
				require.Error(t, err)
				assert.Nil(t, link)
				assert.Empty(t, shortURL)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestLinkService_CreateLink_NoRetryOnGeneratedConflict(t *testing.T) {
	ctx := context.Background()

	repo := &repoMocks.LinkRepository{}
	repo.On("CreateLink", ctx, "test0001", "https://example.com", mock.AnythingOfType("time.Time")).
		Return(nil, domain.ErrDuplicateCode)

	gen := NewTestGenerator()
	svc := NewLinkService(repo, gen, "http://localhost:8080")

	_, _, err := svc.CreateLink(ctx, "https://example.com", "")
	assert.ErrorIs(t, err, domain.ErrCodeConflict)

	// One candidate, one insert attempt, conflict surfaced.
	assert.Equal(t, 1, gen.Calls())
	repo.AssertNumberOfCalls(t, "CreateLink", 1)
}

func TestLinkService_CreateLink_GeneratorError(t *testing.T) {
	ctx := context.Background()

	repo := &repoMocks.LinkRepository{}
	gen := NewTestGenerator()
	gen.FailWith(assert.AnError)

	svc := NewLinkService(repo, gen, "http://localhost:8080")

	_, _, err := svc.CreateLink(ctx, "https://example.com", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate code")
	repo.AssertExpectations(t)
}

func TestLinkService_CreateLink_ValidationBeforeStore(t *testing.T) {
	ctx := context.Background()

	invalidURLs := []string{
		"",
		"not-a-url",
		"ftp://example.com",
		"javascript:alert(1)",
		"data:text/plain,hello",
		"file:///etc/passwd",
		"/relative/path",
	}

	for _, url := range invalidURLs {
		t.Run("invalid_url_"+url, func(t *testing.T) {
			// No expectations: invalid input must never reach the store.
			repo := &repoMocks.LinkRepository{}
			svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080")

			_, _, err := svc.CreateLink(ctx, url, "")
			assert.ErrorIs(t, err, domain.ErrInvalidURL)
			repo.AssertExpectations(t)
		})
	}
}

func TestLinkService_GetLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		code       string
		setupMocks func(*repoMocks.LinkRepository)
		wantErr    error
	}{
		{
			name: "successful retrieval",
			code: "MYCODE1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("GetLink", ctx, "MYCODE1").
					Return(&domain.Link{
						Code:      "MYCODE1",
						URL:       "https://example.com",
						Clicks:    5,
						CreatedAt: time.Now().UTC(),
					}, nil)
			},
		},
		{
			name:       "invalid code",
			code:       "ab",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrInvalidCode,
		},
		{
			name: "not found",
			code: "missing1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("GetLink", ctx, "missing1").
					Return(nil, domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMocks.LinkRepository{}
			tt.setupMocks(repo)

			svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080")

			link, err := svc.GetLink(ctx, tt.code)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, link)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.code, link.Code)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestLinkService_ListLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("returns repository ordering untouched", func(t *testing.T) {
		repo := &repoMocks.LinkRepository{}
		repo.On("GetAllLinks", ctx).
			Return([]*domain.Link{
				{Code: "newest1", URL: "https://b.example.com"},
				{Code: "oldest1", URL: "https://a.example.com"},
			}, nil)

		svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080")

		links, err := svc.ListLinks(ctx)
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "newest1", links[0].Code)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &repoMocks.LinkRepository{}
		repo.On("GetAllLinks", ctx).Return(nil, assert.AnError)

		svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080")

		links, err := svc.ListLinks(ctx)
		require.Error(t, err)
		assert.Nil(t, links)
		repo.AssertExpectations(t)
	})
}

func TestLinkService_DeleteLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		code       string
		setupMocks func(*repoMocks.LinkRepository)
		wantErr    error
	}{
		{
			name: "successful deletion",
			code: "MYCODE1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("DeleteLink", ctx, "MYCODE1").
					Return(&domain.Link{Code: "MYCODE1", URL: "https://example.com"}, nil)
			},
		},
		{
			name:       "invalid code",
			code:       "ab-123!",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrInvalidCode,
		},
		{
			name: "not found",
			code: "missing1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("DeleteLink", ctx, "missing1").
					Return(nil, domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMocks.LinkRepository{}
			tt.setupMocks(repo)

			svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080")

			deleted, err := svc.DeleteLink(ctx, tt.code)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, deleted)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.code, deleted)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestLinkService_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		code       string
		setupMocks func(*repoMocks.LinkRepository)
		wantURL    string
		wantErr    error
	}{
		{
			name: "successful resolve",
			code: "MYCODE1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("RecordClick", ctx, "MYCODE1", mock.AnythingOfType("time.Time")).
					Return("https://example.com", nil)
			},
			wantURL: "https://example.com",
		},
		{
			name: "malformed code is indistinguishable from unknown code",
			code: "ab",
			// No expectations: malformed codes never reach the store.
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrNotFound,
		},
		{
			name: "unknown code",
			code: "missing1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("RecordClick", ctx, "missing1", mock.AnythingOfType("time.Time")).
					Return("", domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "repository error",
			code: "MYCODE1",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("RecordClick", ctx, "MYCODE1", mock.AnythingOfType("time.Time")).
					Return("", assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMocks.LinkRepository{}
			tt.setupMocks(repo)

			svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080")

			url, err := svc.Resolve(ctx, tt.code)

			if tt.wantURL != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantURL, url)
			} else {
				require.Error(t, err)
				assert.Empty(t, url)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestLinkService_Close(t *testing.T) {
	repo := &repoMocks.LinkRepository{}
	repo.On("Close").Return(nil)

	svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080")

	err := svc.Close()
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLinkService_ShortURL_TrimsTrailingSlash(t *testing.T) {
	ctx := context.Background()

	repo := &repoMocks.LinkRepository{}
	repo.On("CreateLink", ctx, "MYCODE1", "https://example.com", mock.AnythingOfType("time.Time")).
		Return(&domain.Link{Code: "MYCODE1", URL: "https://example.com"}, nil)

	svc := NewLinkService(repo, NewTestGenerator(), "http://localhost:8080/")

	_, shortURL, err := svc.CreateLink(ctx, "https://example.com", "MYCODE1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/MYCODE1", shortURL)
}
