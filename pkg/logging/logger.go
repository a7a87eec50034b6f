// Package logging writes the game's structured JSON logs. Records made
// while a match is being played carry that match's ID, taken from the
// context passed to each call.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "WOOSH_LOG_LEVEL"

// redacted replaces the value of attributes named in sensitiveKeys
const redacted = "[REDACTED]"

// sensitiveKeys are substrings of attribute names whose values are never
// written. "key" is absent so that key names can be logged.
var sensitiveKeys = []string{
	"password", "passwd", "pwd",
	"token", "auth",
	"secret", "private",
	"cookie", "session",
}

// Logger is a slog.Logger whose leveled methods take the context first.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger on stderr, leaving stdout to renderers that
// print frames. WOOSH_LOG_LEVEL picks DEBUG, INFO, WARN or ERROR; INFO
// otherwise.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stderr, ParseLevel(os.Getenv(LevelEnv)))
}

// NewLoggerWithWriter returns a Logger writing JSON lines to w.
func NewLoggerWithWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redact,
	}))}
}

// Discard returns a Logger that writes nothing. Tests use it.
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, slog.LevelError)
}

func (l *Logger) logMatch(ctx context.Context, level slog.Level, msg string, args []any) {
	if id := GetMatchID(ctx); id != "" {
		args = append(args, "match_id", id)
	}
	l.Log(ctx, level, msg, args...)
}

// Debug logs per-frame detail such as shots and hits.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.logMatch(ctx, slog.LevelDebug, msg, args)
}

// Info logs lifecycle records: matches starting and ending, loops
// starting and stopping.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.logMatch(ctx, slog.LevelInfo, msg, args)
}

// Warn logs a problem the game plays on through, like a missing clip.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.logMatch(ctx, slog.LevelWarn, msg, args)
}

// Error logs msg with err's text under "error". A nil err is omitted.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.logMatch(ctx, slog.LevelError, msg, args)
}

type matchIDKey struct{}

// WithMatchID returns ctx carrying matchID, or a fresh ID when matchID is
// empty.
func WithMatchID(ctx context.Context, matchID string) context.Context {
	if matchID == "" {
		matchID = GenerateMatchID()
	}
	return context.WithValue(ctx, matchIDKey{}, matchID)
}

// GetMatchID returns the match ID carried by ctx, if any.
func GetMatchID(ctx context.Context) string {
	id, _ := ctx.Value(matchIDKey{}).(string)
	return id
}

// GenerateMatchID returns 16 random hex characters.
func GenerateMatchID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	name := strings.ToLower(a.Key)
	for _, s := range sensitiveKeys {
		if strings.Contains(name, s) {
			return slog.String(a.Key, redacted)
		}
	}
	return a
}

// WrapError prefixes err with a description of what was being attempted,
// formatted from what and args. It returns nil for a nil err.
func WrapError(err error, what string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		what = fmt.Sprintf(what, args...)
	}
	return fmt.Errorf("%s: %w", what, err)
}
