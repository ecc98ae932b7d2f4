package datemath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnparseable is returned when a date or time expression cannot be
// interpreted. Callers surface it as a re-prompt, never as a fatal error.
var ErrUnparseable = errors.New("unparseable date/time expression")

// Parser converts natural-language date and time expressions into absolute values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseDate converts a date expression to an absolute day. The baseTime is the
// reference point (usually time.Now()). Deterministic keywords are resolved
// first; anything else goes through the fuzzy free-text parser.
func (p *Parser) ParseDate(text string, baseTime time.Time) (time.Time, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return time.Time{}, ErrUnparseable
	}

	switch text {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	}

	if strings.Contains(text, "next") {
		if d, ok := p.parseNextWeekday(text, baseTime); ok {
			return d, nil
		}
	}

	if d, ok := p.parseBareWeekday(text, baseTime); ok {
		return d, nil
	}

	parsed, err := dateparse.ParseIn(text, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, text)
	}
	return p.normalizeYear(p.startOfDay(parsed), baseTime), nil
}

// parseBareWeekday handles "saturday", "on saturday", "this saturday":
// the upcoming occurrence of the named weekday, today included.
func (p *Parser) parseBareWeekday(text string, baseTime time.Time) (time.Time, bool) {
	trimmed := strings.TrimPrefix(text, "on ")
	trimmed = strings.TrimPrefix(trimmed, "this ")
	target, ok := weekdays[strings.TrimSpace(trimmed)]
	if !ok {
		return time.Time{}, false
	}
	daysAhead := (int(target) - int(baseTime.Weekday()) + 7) % 7
	return p.startOfDay(baseTime.AddDate(0, 0, daysAhead)), true
}

// normalizeYear anchors year-less fuzzy parses (the free-text parser
// yields year 0 for expressions like "March 5") onto the base year,
// rolling one year forward when that day has already passed.
func (p *Parser) normalizeYear(d, baseTime time.Time) time.Time {
	if d.Year() >= 1000 {
		return d
	}
	adjusted := time.Date(baseTime.Year(), d.Month(), d.Day(), 0, 0, 0, 0, p.location)
	if adjusted.Before(p.startOfDay(baseTime)) {
		adjusted = adjusted.AddDate(1, 0, 0)
	}
	return adjusted
}

// parseNextWeekday handles "next monday" .. "next sunday". If today already is
// the named weekday, the result is pushed a full week forward.
func (p *Parser) parseNextWeekday(text string, baseTime time.Time) (time.Time, bool) {
	for name, target := range weekdays {
		if !strings.Contains(text, name) {
			continue
		}
		daysAhead := int(target-baseTime.Weekday()) % 7
		if daysAhead <= 0 {
			daysAhead += 7
		}
		return p.startOfDay(baseTime.AddDate(0, 0, daysAhead)), true
	}
	return time.Time{}, false
}

// timeOfDayWords maps vague time-of-day expressions onto a concrete
// in-window hour. Ordered so "afternoon" wins over its "noon" substring.
var timeOfDayWords = []struct {
	word string
	hour int
}{
	{"afternoon", 14},
	{"morning", 10},
	{"evening", 17},
	{"midday", 12},
	{"noon", 12},
}

// ParseTime converts a time expression to a 24-hour (hour, minute) pair.
// Explicit AM/PM markers override 24-hour inference: 12 AM maps to hour 0,
// 12 PM stays 12, and PM adds 12 to every other hour. Digit-free
// time-of-day words resolve through timeOfDayWords.
func (p *Parser) ParseTime(text string) (int, int, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return 0, 0, ErrUnparseable
	}

	if !strings.ContainsAny(text, "0123456789") {
		lower := strings.ToLower(text)
		for _, tod := range timeOfDayWords {
			if strings.Contains(lower, tod.word) {
				return tod.hour, 0, nil
			}
		}
	}

	if strings.Contains(text, "AM") || strings.Contains(text, "PM") {
		compact := strings.ReplaceAll(text, " ", "")
		isPM := strings.Contains(compact, "PM")
		compact = strings.ReplaceAll(compact, "AM", "")
		compact = strings.ReplaceAll(compact, "PM", "")

		hour, minute, err := splitClock(compact)
		if err != nil {
			return 0, 0, err
		}
		if isPM && hour != 12 {
			hour += 12
		} else if !isPM && hour == 12 {
			hour = 0
		}
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnparseable, text)
		}
		return hour, minute, nil
	}

	if hour, minute, err := splitClock(text); err == nil && hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 {
		return hour, minute, nil
	}

	parsed, err := dateparse.ParseAny(text)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnparseable, text)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// Combine anchors a parsed time-of-day onto a parsed date in the parser's timezone.
func (p *Parser) Combine(date time.Time, hour, minute int) time.Time {
	d := date.In(p.location)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location)
}

// splitClock parses "H" or "H:MM" into numeric parts.
func splitClock(s string) (int, int, error) {
	if s == "" {
		return 0, 0, ErrUnparseable
	}
	if h, m, found := strings.Cut(s, ":"); found {
		hour, err := strconv.Atoi(h)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
		}
		minute, err := strconv.Atoi(m)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
		}
		return hour, minute, nil
	}
	hour, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	return hour, 0, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
