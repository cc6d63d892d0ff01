package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
)

const minutesPerDay = 24 * 60

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

type openInterval struct {
	day  time.Weekday
	from int
	to   int
}

// Schedule is a parsed opening-hours string such as "Mon-Fri 09:00-22:00; Sat,Sun 10:00-02:00".
type Schedule struct {
	intervals []openInterval
}

// ParseSchedule parses and validates an opening-hours string.
func ParseSchedule(raw string) (Schedule, error) {
	var schedule Schedule
	entries := strings.Split(raw, ";")
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Fields(entry)
		if len(fields) != 2 {
			return Schedule{}, invalidHours("entry %q must be '<days> <HH:MM>-<HH:MM>'", entry)
		}
		days, err := parseDays(fields[0])
		if err != nil {
			return Schedule{}, err
		}
		from, to, err := parseSpan(fields[1])
		if err != nil {
			return Schedule{}, err
		}
		for _, day := range days {
			if to > from {
				schedule.intervals = append(schedule.intervals, openInterval{day: day, from: from, to: to})
				continue
			}
			next := (day + 1) % 7
			schedule.intervals = append(schedule.intervals,
				openInterval{day: day, from: from, to: minutesPerDay},
				openInterval{day: next, from: 0, to: to},
			)
		}
	}
	if len(schedule.intervals) == 0 {
		return Schedule{}, invalidHours("no opening hours given")
	}
	return schedule, nil
}

// IsOpen reports whether the schedule covers the wall-clock time of t.
func (s Schedule) IsOpen(t time.Time) bool {
	day := t.Weekday()
	minute := t.Hour()*60 + t.Minute()
	for _, iv := range s.intervals {
		if iv.day == day && minute >= iv.from && minute < iv.to {
			return true
		}
	}
	return false
}

// ValidateOpeningHours checks an opening-hours string.
func ValidateOpeningHours(raw string) error {
	_, err := ParseSchedule(raw)
	return err
}

func parseDays(spec string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(spec, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			return nil, invalidHours("empty day in %q", spec)
		}
		bounds := strings.Split(part, "-")
		switch len(bounds) {
		case 1:
			day, ok := weekdays[bounds[0]]
			if !ok {
				return nil, invalidHours("unknown day %q", bounds[0])
			}
			days = append(days, day)
		case 2:
			first, ok := weekdays[bounds[0]]
			if !ok {
				return nil, invalidHours("unknown day %q", bounds[0])
			}
			last, ok := weekdays[bounds[1]]
			if !ok {
				return nil, invalidHours("unknown day %q", bounds[1])
			}
			for day := first; ; day = (day + 1) % 7 {
				days = append(days, day)
				if day == last {
					break
				}
			}
		default:
			return nil, invalidHours("bad day range %q", part)
		}
	}
	return days, nil
}

func parseSpan(spec string) (int, int, error) {
	bounds := strings.Split(spec, "-")
	if len(bounds) != 2 {
		return 0, 0, invalidHours("bad time range %q", spec)
	}
	from, err := parseClock(bounds[0], false)
	if err != nil {
		return 0, 0, err
	}
	to, err := parseClock(bounds[1], true)
	if err != nil {
		return 0, 0, err
	}
	if to == 0 {
		to = minutesPerDay
	}
	if from == to {
		return 0, 0, invalidHours("empty time range %q", spec)
	}
	return from, to, nil
}

func parseClock(spec string, closing bool) (int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, invalidHours("bad time %q", spec)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, invalidHours("bad time %q", spec)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, invalidHours("bad time %q", spec)
	}
	if minutes < 0 || minutes > 59 || hours < 0 || hours > 24 {
		return 0, invalidHours("bad time %q", spec)
	}
	if hours == 24 && (!closing || minutes != 0) {
		return 0, invalidHours("bad time %q", spec)
	}
	return hours*60 + minutes, nil
}

func invalidHours(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainErrors.ErrInvalidOpeningHours, fmt.Sprintf(format, args...))
}
