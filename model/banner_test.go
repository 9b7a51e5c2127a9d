package model

import (
	"testing"
	"time"
)

func TestBannerInWindow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		startsAt *time.Time
		endsAt   *time.Time
		want     bool
	}{
		{"no window", nil, nil, true},
		{"inside window", &past, &future, true},
		{"before window opens", &future, nil, false},
		{"after window closes", nil, &past, false},
		{"open start only", &past, nil, true},
		{"open end only", nil, &future, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Banner{StartsAt: tt.startsAt, EndsAt: tt.endsAt}
			if got := b.InWindow(now); got != tt.want {
				t.Errorf("InWindow = %v, want %v", got, tt.want)
			}
		})
	}
}
