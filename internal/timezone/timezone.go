package timezone

import "time"

const DefaultTimezone = "Asia/Kuala_Lumpur"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDateTime reads a "2006-01-02" date and "15:04" clock time in tz.
func ParseDateTime(tz, date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, Location(tz))
}

// ClockOf formats t as HH:MM in tz.
func ClockOf(tz string, t time.Time) string {
	return t.In(Location(tz)).Format("15:04")
}

// ParseDate reads a "2006-01-02" date at midnight in tz.
func ParseDate(tz, date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, Location(tz))
}
