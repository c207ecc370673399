package web

import (
	"time"

	"github.com/google/uuid"
)

func formatUUID(b [16]byte, valid bool) string {
	if !valid {
		return ""
	}
	return uuid.UUID(b).String()
}

func formatTimestamp(t time.Time, valid bool) string {
	if !valid {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
