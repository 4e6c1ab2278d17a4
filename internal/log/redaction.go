package log

import (
	"context"
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

// sessionMarker is the URL matrix parameter that carries the session
// token on every authenticated request.
const sessionMarker = ";jsessionid="

// sensitiveKeys defines the list of keys whose values should be redacted.
// Keys are case-insensitive and matched as substrings, so "sessionid"
// also covers "jsessionid".
var sensitiveKeys = map[string]struct{}{
	"password":  {},
	"pass":      {},
	"secret":    {},
	"token":     {},
	"sessionid": {},
	"auth":      {},
	"cred":      {},
	"key":       {},
}

// RedactingHandler is a slog.Handler that redacts sensitive information.
type RedactingHandler struct {
	next slog.Handler
}

// NewRedactingHandler creates a new RedactingHandler.
func NewRedactingHandler(next slog.Handler) *RedactingHandler {
	return &RedactingHandler{next: next}
}

// Enabled implements slog.Handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler. It redacts sensitive attributes before passing to the next handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	var attrs []slog.Attr

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, redactAttr(a))
		return true
	})

	// Create a new record with redacted attributes
	newRecord := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	newRecord.AddAttrs(attrs...)

	return h.next.Handle(ctx, newRecord)
}

// WithAttrs implements slog.Handler.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redactedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redactedAttrs[i] = redactAttr(a)
	}
	return &RedactingHandler{next: h.next.WithAttrs(redactedAttrs)}
}

// WithGroup implements slog.Handler.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name)}
}

func redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redactedGroup := make([]interface{}, len(attrs))
		for i, attr := range attrs {
			redactedGroup[i] = redactAttr(attr)
		}
		return slog.Group(a.Key, redactedGroup...)
	}

	// Check if key is sensitive
	lowerKey := strings.ToLower(a.Key)
	for sens := range sensitiveKeys {
		if strings.Contains(lowerKey, sens) {
			return slog.String(a.Key, redacted)
		}
	}

	// Session tokens also appear inside URL values, e.g. the target of a
	// request log line.
	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); strings.Contains(strings.ToLower(s), sessionMarker) {
			return slog.String(a.Key, scrubSessionToken(s))
		}
	}

	return a
}

// scrubSessionToken masks the token of every ";jsessionid=" matrix
// parameter inside s, leaving the rest of the URL readable.
func scrubSessionToken(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(strings.ToLower(s), sessionMarker)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		cut := i + len(sessionMarker)
		b.WriteString(s[:cut])
		b.WriteString(redacted)
		s = s[cut:]
		j := 0
		for j < len(s) && !isTokenDelim(s[j]) {
			j++
		}
		s = s[j:]
	}
}

func isTokenDelim(c byte) bool {
	switch c {
	case ';', '?', '&', '#', '/', ' ', '"':
		return true
	}
	return false
}
