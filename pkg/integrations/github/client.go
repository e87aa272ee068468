// Package github provides a minimal GitHub API client for catalog discovery.
package github

import (
	"context"
	"fmt"

	"github.com/nwb-extensions/extensions-matrix/pkg/integrations"
)

// perPage is the page size used for repository listing requests.
const perPage = 100

// Client provides access to the GitHub API for organization repository
// listings and raw file content.
type Client struct {
	*integrations.Client
	baseURL    string
	rawBaseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower rate limits).
func NewClient(token string) *Client {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:     integrations.NewClient(headers),
		baseURL:    "https://api.github.com",
		rawBaseURL: "https://raw.githubusercontent.com",
	}
}

// ListOrgRepos retrieves all repositories of an organization using pagination.
// It requests pages of 100 repos and stops when a page comes back short or
// empty. Any page failure aborts the whole listing.
func (c *Client) ListOrgRepos(ctx context.Context, org string) ([]Repo, error) {
	var all []Repo

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/orgs/%s/repos?per_page=%d&page=%d", c.baseURL, org, perPage, page)

		var repos []Repo
		if err := c.Get(ctx, url, &repos); err != nil {
			return nil, fmt.Errorf("list repos for org %s (page %d): %w", org, page, err)
		}

		all = append(all, repos...)
		if len(repos) < perPage {
			break
		}
	}

	return all, nil
}

// FetchRawFile retrieves the raw content of a file from a repository branch.
func (c *Client) FetchRawFile(ctx context.Context, org, repo, branch, path string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBaseURL, org, repo, branch, path)
	return c.GetText(ctx, url)
}
