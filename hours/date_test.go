package hours

import (
	"testing"
	"time"
)

func TestDateString(t *testing.T) {
	d := Date{Year: 2025, Month: time.January, Day: 5}
	expected := "2025-01-05"
	if s := d.String(); s != expected {
		t.Errorf("String() expected %q, got %q", expected, s)
	}
}

func TestDateStart(t *testing.T) {
	d := Date{Year: 2022, Month: time.November, Day: 9}
	start := d.Start()
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("Start() expected midnight, got %v", start)
	}
	if start.Location() != Stockholm() {
		t.Errorf("Start() expected Stockholm location, got %v", start.Location())
	}
	_, offset := start.Zone()
	if offset != 3600 {
		t.Errorf("expected CET offset 3600 in November, got %d", offset)
	}
}

func TestDateHours(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected int
	}{
		{
			name:     "regular day",
			date:     Date{Year: 2022, Month: time.November, Day: 9},
			expected: 24,
		},
		{
			name:     "spring DST transition",
			date:     Date{Year: 2025, Month: time.March, Day: 30},
			expected: 23,
		},
		{
			name:     "autumn DST transition",
			date:     Date{Year: 2025, Month: time.October, Day: 26},
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h := tt.date.Hours(); h != tt.expected {
				t.Errorf("Hours() expected %d, got %d", tt.expected, h)
			}
		})
	}
}

func TestDateNext(t *testing.T) {
	d := Date{Year: 2024, Month: time.December, Day: 31}
	expected := Date{Year: 2025, Month: time.January, Day: 1}
	if n := d.Next(); n != expected {
		t.Errorf("Next() expected %+v, got %+v", expected, n)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2022-11-09")
	if err != nil {
		t.Fatalf("ParseDate() unexpected error: %v", err)
	}
	expected := Date{Year: 2022, Month: time.November, Day: 9}
	if d != expected {
		t.Errorf("ParseDate() expected %+v, got %+v", expected, d)
	}

	if _, err := ParseDate("09/11/2022"); err == nil {
		t.Error("ParseDate() expected error for bad format")
	}
}

func TestFromTime(t *testing.T) {
	// 23:30 UTC is already the next day in Stockholm
	utc := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC)
	expected := Date{Year: 2025, Month: time.June, Day: 2}
	if d := FromTime(utc); d != expected {
		t.Errorf("FromTime() expected %+v, got %+v", expected, d)
	}

	if !FromTime(time.Time{}).IsZero() {
		t.Error("FromTime() of zero time should be zero date")
	}
}
