package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Data is the aggregated public-activity record for one GitHub handle.
type Data struct {
	PublicRepos  int            `json:"public_repos"`
	TotalStars   int            `json:"total_stars"`
	Languages    map[string]int `json:"languages"`
	RecentRepos  []Repo         `json:"recent_repos"`
	LastActivity *time.Time     `json:"last_activity"`
}

type Repo struct {
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	UpdatedAt   *time.Time `json:"updated_at"`
	Description string     `json:"description"`
	Language    string     `json:"language"`
}

type Client interface {
	// Fetch returns nil on any failure; callers treat absence as a signal,
	// never as an error.
	Fetch(ctx context.Context, username string) *Data
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(logger *log.Logger) Client {
	return &httpClient{
		baseURL: "https://api.github.com",
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// NewClientWithBase exists for tests against httptest servers.
func NewClientWithBase(baseURL string, logger *log.Logger) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type userResponse struct {
	PublicRepos int `json:"public_repos"`
}

type repoResponse struct {
	Name            string     `json:"name"`
	HTMLURL         string     `json:"html_url"`
	UpdatedAt       *time.Time `json:"updated_at"`
	Description     *string    `json:"description"`
	Language        *string    `json:"language"`
	StargazersCount int        `json:"stargazers_count"`
}

func (c *httpClient) Fetch(ctx context.Context, username string) *Data {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil
	}

	var user userResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s", c.baseURL, username), &user); err != nil {
		c.logf("GitHub fetch failed | user=%s err=%v", username, err)
		return nil
	}

	var repos []repoResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", c.baseURL, username), &repos); err != nil {
		c.logf("GitHub repos fetch failed | user=%s err=%v", username, err)
		return nil
	}

	data := &Data{
		PublicRepos: user.PublicRepos,
		Languages:   map[string]int{},
	}

	for _, r := range repos {
		data.TotalStars += r.StargazersCount
		if r.Language != nil && *r.Language != "" {
			data.Languages[*r.Language]++
		}
	}

	limit := 5
	if len(repos) < limit {
		limit = len(repos)
	}
	data.RecentRepos = make([]Repo, 0, limit)
	for _, r := range repos[:limit] {
		repo := Repo{Name: r.Name, URL: r.HTMLURL, UpdatedAt: r.UpdatedAt}
		if r.Description != nil {
			repo.Description = *r.Description
		}
		if r.Language != nil {
			repo.Language = *r.Language
		}
		data.RecentRepos = append(data.RecentRepos, repo)
	}

	if len(repos) > 0 {
		data.LastActivity = repos[0].UpdatedAt
	}

	return data
}

func (c *httpClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *httpClient) logf(format string, args ...any) {
	if c != nil && c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
