package domain

import (
	"time"
)

// Link represents a short code mapped to a destination URL
type Link struct {
	Code        string     `json:"code"`
	URL         string     `json:"url"`
	Clicks      int64      `json:"clicks"`
	LastClicked *time.Time `json:"last_clicked,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateLinkRequest represents the request to create a short link
type CreateLinkRequest struct {
	URL  string `json:"url"`
	Code string `json:"code,omitempty"`
}

// CreateLinkResponse represents the response when creating a short link
type CreateLinkResponse struct {
	OK       bool   `json:"ok"`
	Link     *Link  `json:"link"`
	ShortURL string `json:"short_url"`
}

// DeleteLinkResponse represents the response when deleting a short link
type DeleteLinkResponse struct {
	OK      bool   `json:"ok"`
	Deleted string `json:"deleted"`
}

// ErrorResponse represents an error returned by the API
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthResponse represents the liveness status of the server
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
