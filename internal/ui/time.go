package ui

import (
	"fmt"
	"time"
)

// FormatAge returns a compact age string like "2m ago" for a todo's
// creation time.
func FormatAge(then, now time.Time) string {
	d := now.Sub(then)
	if d < 0 {
		d = 0
	}

	seconds := int64(d.Truncate(time.Second).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds ago", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd ago", days)
}
