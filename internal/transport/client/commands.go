package client

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Commands provides command-line operations for the client
type Commands struct {
	client *Client
}

// NewCommands creates a new Commands instance
func NewCommands(client *Client) *Commands {
	return &Commands{
		client: client,
	}
}

// Create creates a short link and displays the result
func (c *Commands) Create(ctx context.Context, url, code string) error {
	result, err := c.client.CreateLink(ctx, url, code)
	if err != nil {
		return err
	}

	fmt.Printf("Short link created:\n")
	fmt.Printf("Code: %s\n", result.Link.Code)
	fmt.Printf("Short URL: %s\n", result.ShortURL)
	fmt.Printf("URL: %s\n", result.Link.URL)
	fmt.Printf("Created At: %s\n", result.Link.CreatedAt.Format(time.RFC3339))

	return nil
}

// Get retrieves and displays information about a short link
func (c *Commands) Get(ctx context.Context, code string) error {
	link, err := c.client.GetLink(ctx, code)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Printf("Code '%s' not found\n", code)
			return nil
		}
		return err
	}

	fmt.Printf("Link Information:\n")
	fmt.Printf("Code: %s\n", link.Code)
	fmt.Printf("URL: %s\n", link.URL)
	fmt.Printf("Created At: %s\n", link.CreatedAt.Format(time.RFC3339))
	if link.LastClicked != nil {
		fmt.Printf("Last Clicked: %s\n", link.LastClicked.Format(time.RFC3339))
	} else {
		fmt.Printf("Last Clicked: Never\n")
	}
	fmt.Printf("Clicks: %d\n", link.Clicks)

	return nil
}

// Delete removes a short link
func (c *Commands) Delete(ctx context.Context, code string) error {
	err := c.client.DeleteLink(ctx, code)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Printf("Code '%s' not found\n", code)
			return nil
		}
		return err
	}

	fmt.Printf("Short link '%s' deleted successfully\n", code)
	return nil
}

// List displays all short links in a table format
func (c *Commands) List(ctx context.Context) error {
	links, err := c.client.ListLinks(ctx)
	if err != nil {
		return err
	}

	if len(links) == 0 {
		fmt.Println("No links found")
		return nil
	}

	fmt.Printf("%-10s %-50s %-20s %-20s %s\n", "Code", "URL", "Created At", "Last Clicked", "Clicks")
	fmt.Println(strings.Repeat("-", 115))

	for _, link := range links {
		lastClicked := "Never"
		if link.LastClicked != nil {
			lastClicked = link.LastClicked.Format("2006-01-02 15:04:05")
		}

		url := link.URL
		if len(url) > 50 {
			url = url[:47] + "..."
		}

		fmt.Printf("%-10s %-50s %-20s %-20s %d\n",
			link.Code,
			url,
			link.CreatedAt.Format("2006-01-02 15:04:05"),
			lastClicked,
			link.Clicks,
		)
	}

	return nil
}
