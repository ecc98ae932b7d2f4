package datemath_test

import (
	"errors"
	"testing"
	"time"

	"dealership-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("America/New_York"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		text    string
		want    time.Time
		wantErr bool
	}{
		{name: "Today", text: "today", want: startOfBase},
		{name: "Tomorrow", text: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Next Monday from Wed", text: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday from Wed is a full week", text: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Fuzzy absolute date", text: "May 15, 2024", want: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Year-less date ahead keeps base year", text: "June 10", want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Year-less date passed rolls a year forward", text: "March 5", want: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "Bare weekday", text: "saturday", want: startOfBase.AddDate(0, 0, 3)},
		{name: "Bare weekday with filler", text: "on saturday", want: startOfBase.AddDate(0, 0, 3)},
		{name: "Bare weekday on that weekday is today", text: "wednesday", want: startOfBase},
		{name: "Garbage", text: "the cromulent day", wantErr: true},
		{name: "Empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDate(tt.text, baseTime)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnparseable) {
					t.Fatalf("expected ErrUnparseable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// Every "next <weekday>" result must land strictly in the future, 1-7 days
// ahead, on the named weekday.
func TestParseDateNextWeekdayProperty(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	names := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	// Run from every possible base weekday.
	for offset := 0; offset < 7; offset++ {
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
		for name, wd := range names {
			got, err := parser.ParseDate("next "+name, base)
			if err != nil {
				t.Fatalf("ParseDate(next %s) from %s: %v", name, base.Weekday(), err)
			}
			if got.Weekday() != wd {
				t.Errorf("next %s from %s: got weekday %s", name, base.Weekday(), got.Weekday())
			}
			days := int(got.Sub(time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24)
			if days < 1 || days > 7 {
				t.Errorf("next %s from %s: %d days ahead, want 1-7", name, base.Weekday(), days)
			}
		}
	}
}

func TestParseTime(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name      string
		text      string
		hour, min int
		wantErr   bool
	}{
		{name: "Morning with minutes", text: "9:30 AM", hour: 9, min: 30},
		{name: "Midnight edge", text: "12:00 AM", hour: 0, min: 0},
		{name: "Noon edge", text: "12:00 PM", hour: 12, min: 0},
		{name: "Afternoon", text: "3:30 PM", hour: 15, min: 30},
		{name: "Bare hour with marker", text: "5 pm", hour: 17, min: 0},
		{name: "Compact marker", text: "10am", hour: 10, min: 0},
		{name: "24-hour clock", text: "14:30", hour: 14, min: 30},
		{name: "Morning word", text: "morning", hour: 10, min: 0},
		{name: "Afternoon word", text: "in the afternoon", hour: 14, min: 0},
		{name: "Evening word", text: "evening", hour: 17, min: 0},
		{name: "Noon word", text: "noon", hour: 12, min: 0},
		{name: "Bare 24-hour", text: "16", hour: 16, min: 0},
		{name: "Out of range", text: "25:00 PM", wantErr: true},
		{name: "Garbage", text: "half past never", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parser.ParseTime(tt.text)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnparseable) {
					t.Fatalf("expected ErrUnparseable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hour != tt.hour || minute != tt.min {
				t.Errorf("ParseTime(%q) = (%d,%d), want (%d,%d)", tt.text, hour, minute, tt.hour, tt.min)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	got := parser.Combine(date, 14, 30)
	want := time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Combine = %v, want %v", got, want)
	}
}
