package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchAggregatesRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/octocat":
			w.Write([]byte(`{"public_repos": 3}`))
		case "/users/octocat/repos":
			w.Write([]byte(`[
				{"name": "one", "html_url": "https://github.com/octocat/one", "updated_at": "2026-07-01T00:00:00Z", "language": "Go", "stargazers_count": 12},
				{"name": "two", "html_url": "https://github.com/octocat/two", "updated_at": "2026-06-01T00:00:00Z", "language": "Go", "stargazers_count": 3},
				{"name": "three", "html_url": "https://github.com/octocat/three", "updated_at": "2026-05-01T00:00:00Z", "language": "TypeScript", "description": "demo", "stargazers_count": 0}
			]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, nil)
	data := c.Fetch(context.Background(), "octocat")
	if data == nil {
		t.Fatal("Fetch returned nil")
	}
	if data.PublicRepos != 3 {
		t.Fatalf("public repos = %d, want 3", data.PublicRepos)
	}
	if data.TotalStars != 15 {
		t.Fatalf("total stars = %d, want 15", data.TotalStars)
	}
	if data.Languages["Go"] != 2 || data.Languages["TypeScript"] != 1 {
		t.Fatalf("languages = %v", data.Languages)
	}
	if len(data.RecentRepos) != 3 {
		t.Fatalf("recent repos = %d, want 3", len(data.RecentRepos))
	}
	if data.RecentRepos[2].Description != "demo" {
		t.Fatalf("description = %q", data.RecentRepos[2].Description)
	}
	if data.LastActivity == nil || !data.LastActivity.Equal(*data.RecentRepos[0].UpdatedAt) {
		t.Fatalf("last activity = %v", data.LastActivity)
	}
}

func TestFetchUnknownUserReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, nil)
	if data := c.Fetch(context.Background(), "ghost"); data != nil {
		t.Fatalf("Fetch = %+v, want nil", data)
	}
}

func TestFetchEmptyUsername(t *testing.T) {
	c := NewClientWithBase("http://127.0.0.1:0", nil)
	if data := c.Fetch(context.Background(), "  "); data != nil {
		t.Fatalf("Fetch = %+v, want nil", data)
	}
}
