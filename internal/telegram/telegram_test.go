package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"tgnotify/pkg/logx"
)

// fakeAPI stands in for the Bot API. getMe always succeeds so the client can
// be constructed; sendMessage behavior is controlled per test.
func fakeAPI(t *testing.T, sendStatus int, sendBody string, lastSend *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"t","username":"t_bot"}}`)
			return
		}
		if lastSend != nil {
			b, _ := io.ReadAll(r.Body)
			*lastSend = string(b)
		}
		w.WriteHeader(sendStatus)
		fmt.Fprint(w, sendBody)
	}))
}

func TestParseTarget(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		to       string
		threadID int
		want     Target
	}{
		{name: "numeric chat", to: "123456", want: Target{ChatID: 123456}},
		{name: "negative group id", to: "-1001234", threadID: 7, want: Target{ChatID: -1001234, ThreadID: 7}},
		{name: "channel username", to: "@releases", want: Target{Username: "@releases"}},
		{name: "bare username gets prefixed", to: "releases", want: Target{Username: "@releases"}},
		{name: "surrounding whitespace", to: "  42  ", want: Target{ChatID: 42}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseTarget(tt.to, tt.threadID); got != tt.want {
				t.Fatalf("ParseTarget(%q, %d) = %+v, want %+v", tt.to, tt.threadID, got, tt.want)
			}
		})
	}
}

func TestRecipient(t *testing.T) {
	t.Parallel()
	if got := ParseTarget("-1001234", 0).recipient().Recipient(); got != "-1001234" {
		t.Fatalf("numeric recipient = %q", got)
	}
	if got := ParseTarget("@releases", 0).recipient().Recipient(); got != "@releases" {
		t.Fatalf("username recipient = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short string must pass through, got %q", got)
	}
	if got := truncate("exact", 5); got != "exact" {
		t.Fatalf("exact-length string must pass through, got %q", got)
	}

	got := truncate(strings.Repeat("a", 100), 10)
	if got != strings.Repeat("a", 9)+"…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Fatalf("truncated length = %d runes, want 10", n)
	}

	// multi-byte runes must not be split
	got = truncate(strings.Repeat("ж", 100), 10)
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Fatalf("multibyte truncated length = %d runes, want 10", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("missing ellipsis: %q", got)
	}

	if got := truncate("anything", 0); got != "" {
		t.Fatalf("zero budget must yield empty string, got %q", got)
	}
}

func TestNewRequiresToken(t *testing.T) {
	t.Parallel()
	if _, err := New(Config{}, logx.Nop()); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestSendSuccess(t *testing.T) {
	t.Parallel()
	var sent string
	srv := fakeAPI(t, http.StatusOK,
		`{"ok":true,"result":{"message_id":5,"chat":{"id":-100,"type":"group"}}}`, &sent)
	defer srv.Close()

	n, err := New(Config{Token: "123:abc", APIURL: srv.URL}, logx.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = n.Send(context.Background(), ParseTarget("-100", 7), "hello *world*", Options{
		DisablePreview:      true,
		DisableNotification: true,
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	for _, frag := range []string{"Markdown", "hello *world*", "-100"} {
		if !strings.Contains(sent, frag) {
			t.Fatalf("send request missing %q: %s", frag, sent)
		}
	}
}

func TestSendFailureIsAnOrdinaryError(t *testing.T) {
	t.Parallel()
	srv := fakeAPI(t, http.StatusBadRequest,
		`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, nil)
	defer srv.Close()

	n, err := New(Config{Token: "123:abc", APIURL: srv.URL}, logx.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := n.Send(context.Background(), ParseTarget("-100", 0), "hello", Options{}); err == nil {
		t.Fatal("expected delivery error")
	}
}
