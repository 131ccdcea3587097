package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v54/github"
	"golang.org/x/oauth2"
)

// Client wraps go-github with the calls this service needs.
type Client struct {
	client *github.Client
}

// NewTokenClient returns a Client authenticating every request with token.
// Each call is bounded by timeout.
func NewTokenClient(token string, timeout time.Duration) (*Client, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = timeout

	return NewClient(httpClient), nil
}

// NewClient wraps an already configured *http.Client.
func NewClient(httpClient *http.Client) *Client {
	return &Client{
		client: github.NewClient(httpClient),
	}
}

// WithBaseURL points the client at a GitHub Enterprise or test server.
func (c *Client) WithBaseURL(baseURL string) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github base URL: %w", err)
	}
	c.client.BaseURL = u
	return c, nil
}

// ListRecentCommits returns up to count commits of the default branch,
// newest first.
func (c *Client) ListRecentCommits(ctx context.Context, owner, repo string, count int) ([]Commit, error) {
	opt := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: count},
	}

	commits, _, err := c.client.Repositories.ListCommits(ctx, owner, repo, opt)
	if err != nil {
		return nil, classifyError(err)
	}

	if len(commits) > count {
		commits = commits[:count]
	}

	out := make([]Commit, 0, len(commits))
	for _, rc := range commits {
		out = append(out, toCommit(rc))
	}
	return out, nil
}

func toCommit(rc *github.RepositoryCommit) Commit {
	author := rc.GetCommit().GetAuthor()

	name := author.GetName()
	if name == "" {
		name = rc.GetAuthor().GetLogin()
	}

	return Commit{
		SHA:        rc.GetSHA(),
		Message:    rc.GetCommit().GetMessage(),
		AuthorName: name,
		AuthorDate: author.GetDate().Time,
		HTMLURL:    rc.GetHTMLURL(),
	}
}
