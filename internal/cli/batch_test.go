package cli

import (
	"testing"
	"time"
)

func TestBatchProgress_SequentialCalls(t *testing.T) {
	progress := newBatchProgress()
	for i := 1; i <= 3; i++ {
		progress(i, 3, "file.txt")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "<1s"},
		{42 * time.Second, "42s"},
		{3*time.Minute + 5*time.Second, "3m5s"},
		{2*time.Hour + 10*time.Minute, "2h10m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
