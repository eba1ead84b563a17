package domain

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	ClockLayoutSecs = "15:04:05"
)

// Date is a calendar day without a time zone. Instants built from it are UTC.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Weekday() Weekday { return WeekdayOf(d.t.Weekday()) }
func (d Date) String() string { return d.t.Format(DateLayout) }

// At returns the UTC instant of clock on this day.
func (d Date) At(clock TimeOfDay) time.Time {
	return d.t.Add(time.Duration(clock.seconds) * time.Second)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall clock time within a day. The zero value means "not set".
type TimeOfDay struct {
	seconds int
	valid   bool
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{seconds: hour*3600 + minute*60, valid: true}
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := ClockLayout
	if strings.Count(s, ":") == 2 {
		layout = ClockLayoutSecs
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return TimeOfDay{seconds: t.Hour()*3600 + t.Minute()*60 + t.Second(), valid: true}, nil
}

func (c TimeOfDay) IsZero() bool { return !c.valid }
func (c TimeOfDay) Before(other TimeOfDay) bool { return c.seconds < other.seconds }

func (c TimeOfDay) String() string {
	h, m, s := c.seconds/3600, c.seconds%3600/60, c.seconds%60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

func (c TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Window returns the concrete [start, end) interval of the clock range on day.
func Window(day Date, start, end TimeOfDay) Interval {
	return Interval{Start: day.At(start), End: day.At(end)}
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the tags in index order, Monday first.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayTags = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

func WeekdayOf(wd time.Weekday) Weekday {
	return weekdayTags[wd]
}

func ParseWeekday(s string) (Weekday, error) {
	wd := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if wd.Index() < 0 {
		return "", fmt.Errorf("invalid weekday %q", s)
	}
	return wd, nil
}

// Index returns the position of the weekday with Monday as 0, or -1 for unknown tags.
func (w Weekday) Index() int {
	for i, tag := range Weekdays {
		if tag == w {
			return i
		}
	}
	return -1
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("weekday must be a string: %w", err)
	}
	parsed, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// WeekdaySet filters days by weekday. An empty set allows every day.
type WeekdaySet []Weekday

func (s WeekdaySet) Contains(wd Weekday) bool {
	if len(s) == 0 {
		return true
	}
	for _, allowed := range s {
		if allowed == wd {
			return true
		}
	}
	return false
}

// Days yields every calendar day from start to end inclusive. The sequence can
// be ranged over more than once.
func Days(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for day := start; !day.After(end); day = day.AddDays(1) {
			if !yield(day) {
				return
			}
		}
	}
}

// DaysOn yields the days of Days(start, end) whose weekday belongs to allowed.
func DaysOn(start, end Date, allowed WeekdaySet) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for day := range Days(start, end) {
			if !allowed.Contains(day.Weekday()) {
				continue
			}
			if !yield(day) {
				return
			}
		}
	}
}
