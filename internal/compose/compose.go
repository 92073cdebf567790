// Package compose turns one webhook event into one notification message.
//
// A flat dispatch table maps the event name to a body formatter; unknown
// events fall through to a diagnostic body instead of failing. Every message
// ends with the same two-line actor/status suffix. The package is pure: no
// I/O, no environment access, never an error.
package compose

import (
	"fmt"
	"net/url"
	"strings"

	"tgnotify/internal/github"
)

// Input is the full context a single composition needs. Event may be nil or
// arbitrarily sparse; formatters substitute placeholders for missing fields.
type Input struct {
	EventName string
	Event     *github.Event
	Ref       string // GITHUB_REF, used by release (its payload carries no ref)
	Actor     string // login that triggered the run
	ServerURL string // e.g. https://github.com
	Status    string // success | failure | cancelled | free-form
}

// unknownField is substituted for any string field the payload should have
// carried but did not, keeping a degraded payload diagnosable from the
// message itself.
const unknownField = "unknown"

type formatter func(in Input) string

// formatters is fixed at build time; exactly one entry runs per invocation.
var formatters = map[string]formatter{
	"issue_comment":               issueComment,
	"issues":                      issues,
	"pull_request":                pullRequest,
	"pull_request_review_comment": reviewComment,
	"push":                        push,
	"release":                     release,
}

// Message renders the notification for one event: the event-specific body
// (possibly empty), then the actor/status suffix as the final two lines.
func Message(in Input) string {
	if in.ServerURL == "" {
		in.ServerURL = github.DefaultServerURL
	}
	if in.Event == nil {
		in.Event = &github.Event{}
	}

	f, ok := formatters[in.EventName]
	if !ok {
		f = unsupported
	}
	body := f(in)

	if body == "" {
		return suffix(in)
	}
	return body + "\n\n" + suffix(in)
}

// suffix is the uniform trailer: who triggered the run, then the status with
// its icon. Statuses outside the known set render without an icon.
func suffix(in Input) string {
	actor := orUnknown(in.Actor)
	status := in.Status
	if icon := statusIcon(in.Status); icon != "" {
		status = icon + " " + in.Status
	}
	return fmt.Sprintf("by [%s](%s/%s)\n%s", actor, in.ServerURL, actor, status)
}

func statusIcon(status string) string {
	switch status {
	case "failure":
		return "❗️"
	case "cancelled":
		return "❕"
	case "success":
		return "✅"
	default:
		return ""
	}
}

func issueComment(in Input) string {
	// Only fresh comments are worth a ping; edits and deletions stay silent.
	if in.Event.Action != "created" {
		return ""
	}
	return fmt.Sprintf("💬 new comment on [%s](%s)", issueNumber(in.Event), commentURL(in.Event))
}

func issues(in Input) string {
	ev := in.Event
	ref := fmt.Sprintf("[%s](%s)", issueNumber(ev), issueURL(ev))
	switch ev.Action {
	case "assigned":
		login, profile := userRef(ev.Assignee)
		return fmt.Sprintf("👤 issue %s has been assigned to [%s](%s)", ref, login, profile)
	case "labeled":
		name := labelName(ev)
		return fmt.Sprintf("🏷️ issue %s has been labeled as [%s](%s)", ref, name, labelURL(in, name))
	default:
		return fmt.Sprintf("📋 issue %s has been %s", ref, orUnknown(ev.Action))
	}
}

func pullRequest(in Input) string {
	ev := in.Event
	ref := fmt.Sprintf("[%s](%s)", prSlug(ev), prURL(ev))
	switch ev.Action {
	case "create":
		return fmt.Sprintf("🔀 PR %s has been created", ref)
	case "ready_for_review":
		return fmt.Sprintf("🔀 PR %s is now ready for review", ref)
	case "review_requested":
		return fmt.Sprintf("👀 review is requested on PR %s", ref)
	default:
		return fmt.Sprintf("🔀 PR %s has been %s", ref, orUnknown(ev.Action))
	}
}

func reviewComment(in Input) string {
	ev := in.Event
	return fmt.Sprintf("💬 PR review comment on [%s](%s) has been %s",
		prSlug(ev), commentURL(ev), orUnknown(ev.Action))
}

func push(in Input) string {
	ev := in.Event
	branch := lastRefSegment(ev.Ref)
	repo := repoFullName(ev)

	var b strings.Builder
	fmt.Fprintf(&b, "🆕 new changes pushed to [%s:%s](%s/tree/%s)\n", repo, branch, repoURL(in), branch)
	fmt.Fprintf(&b, "total commits: %d", len(ev.Commits))
	for i, c := range ev.Commits {
		name, username := commitAuthor(c)
		fmt.Fprintf(&b, "\n%d. [%s](%s) by [%s](%s/%s)",
			i+1, oneLine(c.Message), c.URL, name, in.ServerURL, username)
	}
	return b.String()
}

func release(in Input) string {
	tag := lastRefSegment(in.Ref)
	repo := repoFullName(in.Event)
	return fmt.Sprintf("🎉 new release [%s %s](%s/releases/tag/%s)", repo, tag, repoURL(in), tag)
}

func unsupported(in Input) string {
	return fmt.Sprintf("🤷 no message template for event %q", in.EventName)
}

// ---- placeholder-aware field access ----

func orUnknown(s string) string {
	if s == "" {
		return unknownField
	}
	return s
}

func issueNumber(ev *github.Event) string {
	if ev.Issue == nil || ev.Issue.Number == 0 {
		return "#?"
	}
	return fmt.Sprintf("#%d", ev.Issue.Number)
}

func issueURL(ev *github.Event) string {
	if ev.Issue == nil {
		return unknownField
	}
	return orUnknown(ev.Issue.HTMLURL)
}

func commentURL(ev *github.Event) string {
	if ev.Comment == nil {
		return unknownField
	}
	return orUnknown(ev.Comment.HTMLURL)
}

func prSlug(ev *github.Event) string {
	num := "#?"
	if ev.PullRequest != nil && ev.PullRequest.Number != 0 {
		num = fmt.Sprintf("#%d", ev.PullRequest.Number)
	}
	return repoFullName(ev) + num
}

func prURL(ev *github.Event) string {
	if ev.PullRequest == nil {
		return unknownField
	}
	return orUnknown(ev.PullRequest.HTMLURL)
}

func userRef(u *github.User) (login, profile string) {
	if u == nil {
		return unknownField, unknownField
	}
	return orUnknown(u.Login), orUnknown(u.HTMLURL)
}

func labelName(ev *github.Event) string {
	if ev.Label == nil {
		return unknownField
	}
	return orUnknown(ev.Label.Name)
}

func labelURL(in Input, name string) string {
	return repoURL(in) + "/labels/" + url.PathEscape(name)
}

func repoFullName(ev *github.Event) string {
	if ev.Repository == nil {
		return unknownField
	}
	return orUnknown(ev.Repository.FullName)
}

func repoURL(in Input) string {
	if in.Event.Repository != nil && in.Event.Repository.HTMLURL != "" {
		return in.Event.Repository.HTMLURL
	}
	return in.ServerURL + "/" + repoFullName(in.Event)
}

func commitAuthor(c github.Commit) (name, username string) {
	if c.Author == nil {
		return unknownField, unknownField
	}
	return orUnknown(c.Author.Name), orUnknown(c.Author.Username)
}

// lastRefSegment turns "refs/heads/main" into "main" and "refs/tags/v1.0"
// into "v1.0".
func lastRefSegment(ref string) string {
	if ref == "" {
		return unknownField
	}
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// oneLine collapses embedded newlines so multi-line commit messages stay a
// single list entry.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
