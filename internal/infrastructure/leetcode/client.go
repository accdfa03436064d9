package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Data holds the contest-derived profile numbers for one LeetCode handle.
type Data struct {
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

type Client interface {
	// Fetch returns nil on any failure.
	Fetch(ctx context.Context, username string) *Data
}

type httpClient struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
}

func NewClient(logger *log.Logger) Client {
	return &httpClient{
		endpoint: "https://leetcode.com/graphql",
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func NewClientWithEndpoint(endpoint string, logger *log.Logger) Client {
	return &httpClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

const profileQuery = `query userContestRanking($username: String!) {
  userContestRanking(username: $username) {
    rating
    globalRanking
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data struct {
		UserContestRanking *struct {
			Rating        float64 `json:"rating"`
			GlobalRanking int     `json:"globalRanking"`
		} `json:"userContestRanking"`
	} `json:"data"`
}

func (c *httpClient) Fetch(ctx context.Context, username string) *Data {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     profileQuery,
		Variables: map[string]any{"username": username},
	})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logf("LeetCode fetch failed | user=%s err=%v", username, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logf("LeetCode fetch failed | user=%s status=%d body=%s", username, resp.StatusCode, strings.TrimSpace(string(rb)))
		return nil
	}

	var out graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logf("LeetCode decode failed | user=%s err=%v", username, err)
		return nil
	}
	if out.Data.UserContestRanking == nil {
		return nil
	}

	return &Data{
		Score: out.Data.UserContestRanking.Rating,
		Rank:  out.Data.UserContestRanking.GlobalRanking,
	}
}

func (c *httpClient) logf(format string, args ...any) {
	if c != nil && c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
