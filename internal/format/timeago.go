package format

import (
	"fmt"
	"time"
)

// TimeAgo describes how long ago t was in words, relative to now.
func TimeAgo(t time.Time) string {
	return TimeAgoAt(t, time.Now())
}

// TimeAgoAt is TimeAgo with an explicit clock. Future timestamps read as
// "Just now".
func TimeAgoAt(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return unitsAgo(seconds/60, "minute")
	case seconds < 86400:
		return unitsAgo(seconds/3600, "hour")
	default:
		return unitsAgo(seconds/86400, "day")
	}
}

func unitsAgo(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// Age is the letter-form staleness label used by refresh indicators:
// "42s ago", "5m ago", "3h ago". Hours never roll over into days.
func Age(elapsed time.Duration) string {
	s := int64(elapsed / time.Second)
	if s < 0 {
		s = 0
	}
	switch {
	case s < 60:
		return fmt.Sprintf("%ds ago", s)
	case s < 3600:
		return fmt.Sprintf("%dm ago", s/60)
	default:
		return fmt.Sprintf("%dh ago", s/3600)
	}
}
