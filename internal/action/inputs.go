// Package action resolves this action's inputs from the runner environment.
//
// The runner passes every declared input as INPUT_<UPPERCASED-NAME>. Only the
// token and the destination are mandatory; everything else has a zero-ish
// default, optionally overridden by a YAML defaults file (see defaults.go).
package action

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Inputs are the resolved invocation parameters.
type Inputs struct {
	Token string // bot token (required)
	To    string // chat id or @channel username (required)

	ThreadID            int  // forum topic thread id, 0 if none
	DisablePreview      bool // suppress link previews
	DisableNotification bool // send silently

	Status string // workflow status tag: success | failure | cancelled | free-form
	Event  string // event-type override; empty means use GITHUB_EVENT_NAME

	DryRun     bool   // print the message instead of sending it
	ConfigFile string // optional YAML defaults file
}

var (
	ErrMissingToken = errors.New("required input missing: token")
	ErrMissingTo    = errors.New("required input missing: to")
)

// Resolve reads inputs from the environment. It fails only on a missing
// token or destination; no further validation is performed.
//
// Precedence per field: explicit input, then defaults file, then zero value.
// A broken defaults file is reported through warn (best effort) and ignored.
func Resolve(warn func(msg string, err error)) (Inputs, error) {
	in := Inputs{
		Token:      strings.TrimSpace(input("token")),
		To:         strings.TrimSpace(input("to")),
		Status:     input("status"),
		Event:      input("event"),
		ConfigFile: input("config_file"),
	}
	if in.Token == "" {
		return Inputs{}, ErrMissingToken
	}
	if in.To == "" {
		return Inputs{}, ErrMissingTo
	}

	def, err := loadDefaults(in.ConfigFile)
	if err != nil && warn != nil {
		warn("defaults file ignored", err)
	}

	in.ThreadID = intInput("thread_id", def.ThreadID)
	in.DisablePreview = boolInput("disable_web_page_preview", def.DisablePreview)
	in.DisableNotification = boolInput("disable_notification", def.DisableNotification)
	in.DryRun = boolInput("dry_run", false)

	return in, nil
}

func input(name string) string {
	return os.Getenv("INPUT_" + strings.ToUpper(name))
}

func intInput(name string, def int) int {
	raw := strings.TrimSpace(input(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// boolInput accepts the boolean-ish spellings workflows actually use.
// An unset input falls back to def; an unrecognized spelling is false.
func boolInput(name string, def bool) bool {
	raw := strings.ToLower(strings.TrimSpace(input(name)))
	if raw == "" {
		return def
	}
	switch raw {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
