package profile

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
)

// TimeRange is an open interval of a day, "HH:MM" to "HH:MM".
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability is the weekly schedule stored as a JSON string on a barber
// profile, keyed by lowercase English weekday name.
type Availability map[string][]TimeRange

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseAvailability decodes and validates an availability string. An empty
// string is the empty map.
func ParseAvailability(raw string) (Availability, error) {
	if strings.TrimSpace(raw) == "" {
		return Availability{}, nil
	}

	var a Availability
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, httperr.ErrBusiness("invalid_availability")
	}
	if a == nil {
		a = Availability{}
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a Availability) Validate() error {
	for day, ranges := range a {
		if _, ok := weekdays[day]; !ok {
			return httperr.ErrBusiness("invalid_availability")
		}
		for _, r := range ranges {
			start, err1 := time.Parse("15:04", r.Start)
			end, err2 := time.Parse("15:04", r.End)
			if err1 != nil || err2 != nil || !start.Before(end) {
				return httperr.ErrBusiness("invalid_availability")
			}
		}
	}
	return nil
}

// Encode returns the canonical JSON form.
func (a Availability) Encode() string {
	if a == nil {
		return "{}"
	}
	b, err := json.Marshal(a)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (a Availability) IsEmpty() bool {
	for _, ranges := range a {
		if len(ranges) > 0 {
			return false
		}
	}
	return true
}

// Covers reports whether [start, end) falls inside one range of start's
// weekday, evaluated in start's location.
func (a Availability) Covers(start, end time.Time) bool {
	loc := start.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	for day, ranges := range a {
		if weekdays[day] != start.Weekday() {
			continue
		}
		for _, r := range ranges {
			from := parseHM(r.Start)
			to := parseHM(r.End)
			if !start.Before(from) && !end.After(to) {
				return true
			}
		}
	}
	return false
}

// Window is one published range resolved to a concrete day.
type Window struct {
	From time.Time
	To   time.Time
}

// WindowsOn returns the ranges of day's weekday as concrete times in day's
// location, in publication order.
func (a Availability) WindowsOn(day time.Time) []Window {
	var out []Window
	for name, ranges := range a {
		if weekdays[name] != day.Weekday() {
			continue
		}
		for _, r := range ranges {
			from, _ := time.Parse("15:04", r.Start)
			to, _ := time.Parse("15:04", r.End)
			out = append(out, Window{
				From: time.Date(day.Year(), day.Month(), day.Day(), from.Hour(), from.Minute(), 0, 0, day.Location()),
				To:   time.Date(day.Year(), day.Month(), day.Day(), to.Hour(), to.Minute(), 0, 0, day.Location()),
			})
		}
	}
	return out
}
