package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgoAt(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{-time.Hour, "Just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{59*time.Minute + 59*time.Second, "59 minutes ago"},
		{time.Hour, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
		{23 * time.Hour, "23 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{2 * 24 * time.Hour, "2 days ago"},
		{400 * 24 * time.Hour, "400 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeAgoAt(now.Add(-tt.ago), now), "ago=%v", tt.ago)
	}
}

func TestTimeAgo_Now(t *testing.T) {
	assert.Equal(t, "Just now", TimeAgo(time.Now()))
	assert.Equal(t, "5 minutes ago", TimeAgo(time.Now().Add(-5*time.Minute-time.Second)))
}

func TestAge(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0s ago"},
		{-3 * time.Second, "0s ago"},
		{42 * time.Second, "42s ago"},
		{59*time.Second + 900*time.Millisecond, "59s ago"},
		{time.Minute, "1m ago"},
		{5*time.Minute + 30*time.Second, "5m ago"},
		{time.Hour, "1h ago"},
		{49 * time.Hour, "49h ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Age(tt.elapsed), "elapsed=%v", tt.elapsed)
	}
}
