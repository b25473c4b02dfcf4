package civiltime

import (
	"os"
	"time"
)

const (
	// DateLayout is the wall-clock date format used for all day bucketing.
	DateLayout = "2006-01-02"
	// ClockLayout is the wall-clock time-of-day format used for slot matching.
	ClockLayout = "15:04"

	defaultTimezone = "America/New_York"
)

// Resolver converts instants into wall-clock dates and times in the business
// timezone. Every day-boundary decision in the validator goes through a
// Resolver so that DST transitions and UTC offsets cannot shift a shift into
// the wrong calendar day.
type Resolver struct {
	loc *time.Location
}

// NewResolver creates a resolver for the given IANA timezone name.
func NewResolver(tz string) (*Resolver, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &Resolver{loc: loc}, nil
}

// FromEnv builds a resolver from the BUSINESS_TZ environment variable,
// falling back to the default store timezone.
func FromEnv() (*Resolver, error) {
	tz := os.Getenv("BUSINESS_TZ")
	if tz == "" {
		tz = defaultTimezone
	}
	return NewResolver(tz)
}

// Location returns the business timezone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// DateOf returns the calendar date of t in the business timezone.
func (r *Resolver) DateOf(t time.Time) string {
	return t.In(r.loc).Format(DateLayout)
}

// ClockOf returns the HH:mm time of day of t in the business timezone.
func (r *Resolver) ClockOf(t time.Time) string {
	return t.In(r.loc).Format(ClockLayout)
}

// HourOf returns the hour (0-23) of t in the business timezone.
func (r *Resolver) HourOf(t time.Time) int {
	return t.In(r.loc).Hour()
}

// SameDay reports whether two instants fall on the same business-timezone
// calendar day.
func (r *Resolver) SameDay(a, b time.Time) bool {
	return r.DateOf(a) == r.DateOf(b)
}

// WeekStart returns midnight of the Sunday beginning the week containing t,
// in the business timezone.
func (r *Resolver) WeekStart(t time.Time) time.Time {
	lt := t.In(r.loc)
	lt = time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, r.loc)
	return lt.AddDate(0, 0, -int(lt.Weekday()))
}

// At converts a wall-clock date and HH:mm time in the business timezone into
// an absolute instant.
func (r *Resolver) At(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, r.loc)
}

// AddDays shifts a date string by n calendar days.
func (r *Resolver) AddDays(date string, n int) (string, error) {
	d, err := time.ParseInLocation(DateLayout, date, r.loc)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n).Format(DateLayout), nil
}

// DaysBetween returns the number of calendar days from a to b (b - a).
// Date strings are compared as pure dates, so DST days do not skew the count.
func (r *Resolver) DaysBetween(a, b string) (int, error) {
	da, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, err
	}
	db, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, err
	}
	return int(db.Sub(da).Hours() / 24), nil
}

// WeekdayOf returns the weekday of a date string.
func (r *Resolver) WeekdayOf(date string) (time.Weekday, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Sunday, err
	}
	return d.Weekday(), nil
}
