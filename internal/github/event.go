// Package github models the slice of a GitHub webhook payload this action
// reads, plus the runner-provided context of the current workflow run.
//
// Payloads are event-type specific and loosely structured; every nested
// object is optional here. Decoding ignores the (many) fields we never look
// at, and a missing sub-object stays nil rather than failing the decode.
package github

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the decoded webhook payload for the current invocation.
// Read-only for the lifetime of one run.
type Event struct {
	Action string `json:"action"`

	Issue       *Issue       `json:"issue"`
	Comment     *Comment     `json:"comment"`
	PullRequest *PullRequest `json:"pull_request"`
	Assignee    *User        `json:"assignee"`
	Label       *Label       `json:"label"`
	Release     *Release     `json:"release"`
	Repository  *Repository  `json:"repository"`
	Sender      *User        `json:"sender"`

	// Push-only fields.
	Ref     string   `json:"ref"`
	Compare string   `json:"compare"`
	Commits []Commit `json:"commits"`
}

type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

type Comment struct {
	HTMLURL string `json:"html_url"`
}

type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

type Label struct {
	Name string `json:"name"`
}

type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
	Owner    *User  `json:"owner"`
}

type User struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

type Commit struct {
	ID      string        `json:"id"`
	Message string        `json:"message"`
	URL     string        `json:"url"`
	Author  *CommitAuthor `json:"author"`
}

type CommitAuthor struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// LoadEvent reads and decodes the webhook payload file the runner wrote for
// this invocation (GITHUB_EVENT_PATH). An empty path yields an empty Event.
func LoadEvent(path string) (*Event, error) {
	if path == "" {
		return &Event{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event payload: %w", err)
	}
	var ev Event
	if err := json.Unmarshal(b, &ev); err != nil {
		return nil, fmt.Errorf("decode event payload: %w", err)
	}
	return &ev, nil
}
