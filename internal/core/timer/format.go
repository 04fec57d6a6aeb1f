package timer

import (
	"fmt"
	"strings"
)

const placeholderTask = "Your task"

// FormatRemaining renders whole seconds as zero-padded minutes and seconds.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// CompletionMessage builds the text shown when a countdown finishes.
func CompletionMessage(taskName string) string {
	subject := placeholderTask
	if trimmed := strings.TrimSpace(taskName); trimmed != "" {
		subject = "'" + trimmed + "'"
	}
	return subject + " is complete. Time for a break!"
}
