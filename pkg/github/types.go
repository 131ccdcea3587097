package github

import "time"

// Commit is the subset of a GitHub commit the report needs.
type Commit struct {
	SHA        string
	Message    string
	AuthorName string
	AuthorDate time.Time
	HTMLURL    string
}
