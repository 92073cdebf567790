// Package telegram delivers one composed message through the Bot API.
//
// Delivery is fire-and-forget: every failure is logged and swallowed so a
// broken notification never fails the workflow that triggered it.
package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"tgnotify/pkg/logx"
)

type Config struct {
	Token string

	// APIURL overrides the Bot API endpoint (tests, self-hosted gateways).
	// Empty means api.telegram.org.
	APIURL string
}

type Notifier struct {
	bot *tele.Bot
	log logx.Logger
}

func New(cfg Config, log logx.Logger) (*Notifier, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	b, err := tele.NewBot(tele.Settings{Token: cfg.Token, URL: cfg.APIURL})
	if err != nil {
		return nil, err
	}
	return &Notifier{bot: b, log: log}, nil
}

// Target is the resolved message destination.
type Target struct {
	ChatID   int64  // numeric chat id, 0 when Username is set
	Username string // "@channel" form
	ThreadID int    // forum topic, 0 if none
}

// ParseTarget accepts a numeric chat id or a channel username. Anything
// non-numeric is treated as a username; no further validation happens here.
func ParseTarget(to string, threadID int) Target {
	to = strings.TrimSpace(to)
	if id, err := strconv.ParseInt(to, 10, 64); err == nil {
		return Target{ChatID: id, ThreadID: threadID}
	}
	if !strings.HasPrefix(to, "@") {
		to = "@" + to
	}
	return Target{Username: to, ThreadID: threadID}
}

func (t Target) recipient() tele.Recipient {
	if t.Username != "" {
		return channel(t.Username)
	}
	return tele.ChatID(t.ChatID)
}

// channel lets a "@name" destination satisfy tele.Recipient.
type channel string

func (c channel) Recipient() string { return string(c) }

type Options struct {
	DisablePreview      bool
	DisableNotification bool
}

// Send posts the message with Markdown parse mode. The error is logged here
// and also returned so callers can decide to surface it; the expected caller
// ignores it.
func (n *Notifier) Send(ctx context.Context, to Target, text string, opt Options) error {
	sendOpt := &tele.SendOptions{
		ParseMode:             tele.ModeMarkdown,
		DisableWebPagePreview: opt.DisablePreview,
		DisableNotification:   opt.DisableNotification,
		ThreadID:              to.ThreadID,
	}

	_, err := n.bot.Send(to.recipient(), truncate(text, maxMessageRunes), sendOpt)
	if err != nil {
		n.log.Warn("notification send failed",
			logx.Int64("chat_id", to.ChatID),
			logx.String("username", to.Username),
			logx.Int("thread_id", to.ThreadID),
			logx.Err(err))
		return err
	}
	n.log.Debug("notification sent",
		logx.Int64("chat_id", to.ChatID),
		logx.String("username", to.Username),
		logx.Int("thread_id", to.ThreadID))
	return nil
}
