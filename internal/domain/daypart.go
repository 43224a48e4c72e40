package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Daypart is a named time-of-day window. A window whose start is later than
// its end wraps past midnight (e.g. "Soir" 21:30–00:00).
type Daypart struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseClock parses an "HH:MM" string into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: invalid clock time %q", ErrValidation, value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hour in %q", ErrValidation, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid minute in %q", ErrValidation, value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: clock time %q out of range", ErrValidation, value)
	}
	return hour*60 + minute, nil
}

// ResolveDaypart maps an instant's time of day to the first matching window.
// Non-wrapping windows contain t when start <= t < end; wrapping windows when
// t >= start or t < end. Falls back to the first daypart's name so the
// function is total.
func ResolveDaypart(dayparts []Daypart, at time.Time) string {
	if len(dayparts) == 0 {
		return ""
	}
	current := at.Hour()*60 + at.Minute()
	for _, dp := range dayparts {
		start, err := ParseClock(dp.Start)
		if err != nil {
			continue
		}
		end, err := ParseClock(dp.End)
		if err != nil {
			continue
		}
		if start <= end {
			if start <= current && current < end {
				return dp.Name
			}
		} else {
			if current >= start || current < end {
				return dp.Name
			}
		}
	}
	return dayparts[0].Name
}

// CombineDateAndTime builds a UTC instant from an ISO calendar date and an
// "HH:MM" clock time. All timestamps in the system are naive UTC.
func CombineDateAndTime(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// DateOf returns the ISO calendar date of a UTC instant.
func DateOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
