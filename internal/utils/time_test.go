package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	ts := time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC)
	if got := DayKey(ts); got != "2025-03-09" {
		t.Errorf("DayKey = %q, want 2025-03-09", got)
	}
}

func TestIsWithinLastNDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"now itself", now, true},
		{"one day ago", now.AddDate(0, 0, -1), true},
		{"exactly seven days ago", now.AddDate(0, 0, -7), true},
		{"just past seven days", now.AddDate(0, 0, -7).Add(-time.Second), false},
		{"eight days ago", now.AddDate(0, 0, -8), false},
		{"in the future", now.Add(time.Hour), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWithinLastNDays(tc.ts, now, 7); got != tc.want {
				t.Errorf("IsWithinLastNDays(%v) = %v, want %v", tc.ts, got, tc.want)
			}
		})
	}
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	keys := LastNDays(now, 7)

	if len(keys) != 7 {
		t.Fatalf("got %d keys, want 7", len(keys))
	}
	if keys[0] != "2025-03-04" {
		t.Errorf("oldest key = %q, want 2025-03-04", keys[0])
	}
	if keys[6] != "2025-03-10" {
		t.Errorf("newest key = %q, want 2025-03-10", keys[6])
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			t.Errorf("keys not strictly ascending: %q then %q", keys[i-1], keys[i])
		}
	}
}

func TestLastNDaysCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	keys := LastNDays(now, 7)

	if keys[0] != "2025-02-24" {
		t.Errorf("oldest key = %q, want 2025-02-24", keys[0])
	}
	if keys[6] != "2025-03-02" {
		t.Errorf("newest key = %q, want 2025-03-02", keys[6])
	}
}

func TestParseDayKey(t *testing.T) {
	got, err := ParseDayKey("2025-03-10", time.UTC)
	if err != nil {
		t.Fatalf("ParseDayKey error: %v", err)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDayKey = %v, want %v", got, want)
	}

	if _, err := ParseDayKey("03/10/2025", time.UTC); err == nil {
		t.Error("expected error for malformed day key")
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, tz := range []string{"", "Local", "UTC", "America/New_York"} {
		if !ValidateTimezone(tz) {
			t.Errorf("ValidateTimezone(%q) = false, want true", tz)
		}
	}
	if ValidateTimezone("Not/AZone") {
		t.Error("ValidateTimezone accepted an unknown zone")
	}
}

func TestLoadLocationDefaults(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil {
		t.Fatalf("LoadLocation(\"\") error: %v", err)
	}
	if loc != time.Local {
		t.Errorf("LoadLocation(\"\") = %v, want Local", loc)
	}

	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Error("expected error for unknown zone")
	}
}
