package i18n

import (
	"fmt"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04:05", "15:04"}

// FormatEventTime renders a time of day such as "14:05:00" on a 12-hour clock:
// "2:05 PM" in English, "٢:٠٥ م" in Arabic.
// Input that is not a time of day is returned unchanged.
func FormatEventTime(lang Language, timeOfDay string) string {
	clock := strings.TrimSpace(timeOfDay)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return formatClock(lang, t, false)
	}
	return timeOfDay
}

// FormatDate renders a calendar date: "1/14/2020" in English, "١٤/١/٢٠٢٠" in Arabic.
func FormatDate(lang Language, t time.Time) string {
	if lang == Arabic {
		return Digits(lang, fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()))
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// FormatDateTime renders a date with a 12-hour clock including seconds.
func FormatDateTime(lang Language, t time.Time) string {
	sep := ", "
	if lang == Arabic {
		sep = "، "
	}
	return FormatDate(lang, t) + sep + formatClock(lang, t, true)
}

func formatClock(lang Language, t time.Time, seconds bool) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	clock := fmt.Sprintf("%d:%02d", hour, t.Minute())
	if seconds {
		clock += fmt.Sprintf(":%02d", t.Second())
	}

	return Digits(lang, clock) + " " + meridiem(lang, t.Hour() >= 12)
}

func meridiem(lang Language, pm bool) string {
	switch {
	case lang == Arabic && pm:
		return "م"
	case lang == Arabic:
		return "ص"
	case pm:
		return "PM"
	default:
		return "AM"
	}
}

// Digits converts ASCII digits to the numerals of lang.
func Digits(lang Language, s string) string {
	if lang != Arabic {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '٠' + (r - '0')
		}
		return r
	}, s)
}
