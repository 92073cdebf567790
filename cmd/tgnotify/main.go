// Command tgnotify is a one-shot GitHub Action step: it turns the triggering
// webhook event into a single Telegram message and sends it.
//
// Only missing required inputs (token, destination) fail the run. A delivery
// failure is logged and swallowed so the surrounding workflow keeps going.
package main

import (
	"context"
	"fmt"
	"os"

	"tgnotify/internal/action"
	"tgnotify/internal/compose"
	"tgnotify/internal/github"
	"tgnotify/internal/telegram"
	"tgnotify/pkg/logx"
)

func main() {
	os.Exit(run())
}

func run() int {
	level := "info"
	if os.Getenv("RUNNER_DEBUG") == "1" {
		level = "debug"
	}
	log := logx.NewConsole(level)

	in, err := action.Resolve(func(msg string, err error) {
		log.Warn(msg, logx.Err(err))
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		return 1
	}

	rc := github.CurrentRun()
	ev, err := github.LoadEvent(rc.EventPath)
	if err != nil {
		// Compose degrades to placeholders on an empty event.
		log.Warn("event payload unavailable", logx.String("path", rc.EventPath), logx.Err(err))
		ev = &github.Event{}
	}

	eventName := in.Event
	if eventName == "" {
		eventName = rc.EventName
	}

	msg := compose.Message(compose.Input{
		EventName: eventName,
		Event:     ev,
		Ref:       rc.Ref,
		Actor:     rc.Actor,
		ServerURL: rc.ServerURL,
		Status:    in.Status,
	})
	log.Debug("message composed", logx.String("event", eventName), logx.Int("bytes", len(msg)))

	if in.DryRun {
		fmt.Println(msg)
		return 0
	}

	n, err := telegram.New(telegram.Config{Token: in.Token}, log)
	if err != nil {
		log.Error("telegram client unavailable, notification skipped", logx.Err(err))
		return 0
	}
	// Send logs its own failure; the run succeeds either way.
	_ = n.Send(context.Background(), telegram.ParseTarget(in.To, in.ThreadID), msg, telegram.Options{
		DisablePreview:      in.DisablePreview,
		DisableNotification: in.DisableNotification,
	})
	return 0
}
