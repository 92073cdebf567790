package github

import "os"

// DefaultServerURL is used when the runner does not supply GITHUB_SERVER_URL
// (only GitHub Enterprise installations override it).
const DefaultServerURL = "https://github.com"

// RunContext is the ambient workflow-run context supplied by the runner
// through well-known environment variables.
type RunContext struct {
	EventName string // GITHUB_EVENT_NAME, e.g. "push", "issues"
	EventPath string // GITHUB_EVENT_PATH, payload JSON file
	Actor     string // GITHUB_ACTOR, login that triggered the run
	Ref       string // GITHUB_REF, e.g. "refs/tags/v1.2.0"
	ServerURL string // GITHUB_SERVER_URL
}

// CurrentRun captures the run context from the process environment.
func CurrentRun() RunContext {
	rc := RunContext{
		EventName: os.Getenv("GITHUB_EVENT_NAME"),
		EventPath: os.Getenv("GITHUB_EVENT_PATH"),
		Actor:     os.Getenv("GITHUB_ACTOR"),
		Ref:       os.Getenv("GITHUB_REF"),
		ServerURL: os.Getenv("GITHUB_SERVER_URL"),
	}
	if rc.ServerURL == "" {
		rc.ServerURL = DefaultServerURL
	}
	return rc
}
