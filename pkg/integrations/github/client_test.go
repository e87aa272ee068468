package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/nwb-extensions/extensions-matrix/pkg/integrations"
)

func testClient(serverURL, token string) *Client {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:     integrations.NewClient(headers),
		baseURL:    serverURL,
		rawBaseURL: serverURL,
	}
}

func fullPage(page int) []Repo {
	repos := make([]Repo, perPage)
	for i := range repos {
		repos[i] = Repo{Name: fmt.Sprintf("repo-%d-%d", page, i)}
	}
	return repos
}

func TestListOrgRepos_Pagination(t *testing.T) {
	// Two full pages followed by a short page: exactly three requests.
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.URL.Query().Get("per_page"); got != strconv.Itoa(perPage) {
			t.Errorf("got per_page=%s, want %d", got, perPage)
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		var repos []Repo
		if page <= 2 {
			repos = fullPage(page)
		} else {
			repos = []Repo{{Name: "last"}}
		}
		json.NewEncoder(w).Encode(repos)
	}))
	defer server.Close()

	c := testClient(server.URL, "")

	repos, err := c.ListOrgRepos(context.Background(), "nwb-extensions")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("got %d requests, want 3", calls)
	}
	if len(repos) != 2*perPage+1 {
		t.Errorf("got %d repos, want %d", len(repos), 2*perPage+1)
	}
}

func TestListOrgRepos_EmptyFirstPage(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode([]Repo{})
	}))
	defer server.Close()

	c := testClient(server.URL, "")

	repos, err := c.ListOrgRepos(context.Background(), "nwb-extensions")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("got %d requests, want 1", calls)
	}
	if len(repos) != 0 {
		t.Errorf("got %d repos, want 0", len(repos))
	}
}

func TestListOrgRepos_PageFailureAborts(t *testing.T) {
	// A failure on the second page drops the whole listing, including the
	// successfully fetched first page.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			json.NewEncoder(w).Encode(fullPage(1))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := testClient(server.URL, "")

	repos, err := c.ListOrgRepos(context.Background(), "nwb-extensions")
	if err == nil {
		t.Fatal("expected error on page failure")
	}
	if repos != nil {
		t.Errorf("expected no partial result, got %d repos", len(repos))
	}
}

func TestListOrgRepos_AuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("got Authorization %q, want bearer token", got)
		}
		json.NewEncoder(w).Encode([]Repo{})
	}))
	defer server.Close()

	c := testClient(server.URL, "test-token")

	if _, err := c.ListOrgRepos(context.Background(), "nwb-extensions"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

func TestFetchRawFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nwb-extensions/ndx-foo-record/main/ndx-meta.yaml" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("name: ndx-foo\n"))
	}))
	defer server.Close()

	c := testClient(server.URL, "")

	content, err := c.FetchRawFile(context.Background(), "nwb-extensions", "ndx-foo-record", "main", "ndx-meta.yaml")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if content != "name: ndx-foo\n" {
		t.Errorf("got %q", content)
	}
}

func TestRepo_Branch(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{"main", "main"},
		{"master", "master"},
		{"", "main"},
	}

	for _, tt := range tests {
		r := Repo{Name: "ndx-foo-record", DefaultBranch: tt.branch}
		if got := r.Branch(); got != tt.want {
			t.Errorf("Branch() with %q = %q, want %q", tt.branch, got, tt.want)
		}
	}
}
