package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
// Example: 20261018_205106_a7b3
func GenerateSessionID() string {
	now := time.Now()
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID extracts the short ID (last 4 hex chars) from a full session ID.
// Example: "20261018_205106_a7b3" -> "a7b3"
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}

// WithSession tags every log line of one run with its session ID, so runs
// sharing the rotating log file can be told apart.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return With(ctx, map[string]any{"session": sessionID})
}
