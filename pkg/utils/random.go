package utils

import "github.com/google/uuid"

// GenerateID returns a fresh entity ID. Used only to correlate log lines.
func GenerateID() string {
	return uuid.NewString()
}
