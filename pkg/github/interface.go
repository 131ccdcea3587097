package github

import "context"

// IGitHub lists repository commits.
// Implementations are safe for concurrent use.
type IGitHub interface {
	ListRecentCommits(ctx context.Context, owner, repo string, count int) ([]Commit, error)
}

var _ IGitHub = (*Client)(nil)
