package amplitude

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseSessionID turns a session identifier expressed in seconds into a
// millisecond SessionID. Only the leading integer is read, so "12abc" and
// "5.7" yield 12000 and 5000. Identifiers without leading digits, or that
// would overflow once scaled, yield an invalid SessionID instead of an error.
func ParseSessionID(raw string) SessionID {
	seconds, err := strconv.ParseInt(leadingInteger(raw), 10, 64)
	if err != nil {
		return SessionID{}
	}
	if seconds > math.MaxInt64/1000 || seconds < math.MinInt64/1000 {
		return SessionID{}
	}
	return SessionID{Millis: seconds * 1000, Valid: true}
}

// leadingInteger returns the optionally signed run of decimal digits at the
// start of raw, after leading whitespace. It is empty when there are no digits.
func leadingInteger(raw string) string {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return ""
	}
	return s[:end]
}

// endsPreviousSession reports whether a new session replaces a different one.
func endsPreviousSession(event *Event) bool {
	return event.SessionStart &&
		event.Session.PreviousSessionID != "" &&
		event.Session.PreviousSessionID != event.Session.SessionID
}
