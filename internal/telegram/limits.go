package telegram

import "unicode/utf8"

// maxMessageRunes is Telegram's sendMessage text limit.
const maxMessageRunes = 4096

// truncate returns s cut to at most n runes, ellipsis included. Long push
// commit lists must not turn into a provider-side 400.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		count++
		if count > n {
			// Drop one more rune to make room for the ellipsis.
			_, size := utf8.DecodeLastRuneInString(s[:i])
			return s[:i-size] + "…"
		}
	}
	return s
}
