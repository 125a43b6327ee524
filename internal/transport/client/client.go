package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shortlabs/linkd/internal/domain"
)

// Client represents an HTTP client for the link shortener API
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient creates a new link shortener client
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateLink creates a short link. An empty code asks the server to
// generate one.
func (c *Client) CreateLink(ctx context.Context, url, code string) (*domain.CreateLinkResponse, error) {
	reqBody := domain.CreateLinkRequest{URL: url, Code: code}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+"/api/links", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, serverError(resp)
	}

	var result domain.CreateLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// GetLink retrieves information about a short link
func (c *Client) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/links/"+code, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("code '%s' not found", code)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp)
	}

	var link domain.Link
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &link, nil
}

// DeleteLink deletes a short link
func (c *Client) DeleteLink(ctx context.Context, code string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.serverURL+"/api/links/"+code, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("code '%s' not found", code)
	}

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}

	return nil
}

// ListLinks retrieves all short links
func (c *Client) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/links", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp)
	}

	var links []*domain.Link
	if err := json.NewDecoder(resp.Body).Decode(&links); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return links, nil
}

// serverError turns a non-success response into an error, preferring the
// message the server put in the JSON body.
func serverError(resp *http.Response) error {
	var errResp domain.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, errResp.Error)
	}
	return fmt.Errorf("server returned status %d", resp.StatusCode)
}
