// Package calendar provides the year-month and calendar-day value types shared
// by expenses and budgets. Both are parsed and validated at the boundary
// (JSON, query parameters, database scans) so the rest of the code never
// compares raw date strings.
package calendar

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month identifies a calendar month in YYYY-MM form.
type Month struct {
	year  int
	month time.Month
}

// NewMonth returns the month for the given year and month number.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{year: t.Year(), month: t.Month()}
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

// ParseMonth parses a YYYY-MM month key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil || len(s) != len(monthLayout) {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Month{year: t.Year(), month: t.Month()}, nil
}

// Year returns the month's year.
func (m Month) Year() int { return m.year }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.month }

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool { return m.year == 0 && m.month == 0 }

// String returns the YYYY-MM key.
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

// Label returns the long display form, e.g. "October 2026".
func (m Month) Label() string {
	return m.FirstDay().Time().Format("January 2006")
}

// ShortLabel returns the chart axis form, e.g. "Oct 2026".
func (m Month) ShortLabel() string {
	return m.FirstDay().Time().Format("Jan 2006")
}

// AddMonths returns the month n months after m (n may be negative).
func (m Month) AddMonths(n int) Month {
	return NewMonth(m.year, m.month+time.Month(n))
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	if m.year != other.year {
		return m.year < other.year
	}
	return m.month < other.month
}

// FirstDay returns the first calendar day of the month.
func (m Month) FirstDay() Date {
	return Date{year: m.year, month: m.month, day: 1}
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.year, m.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains reports whether d falls within the month.
func (m Month) Contains(d Date) bool {
	return d.year == m.year && d.month == m.month
}

// MarshalJSON encodes the month as a "YYYY-MM" string.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a "YYYY-MM" string.
func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("month must be a string: %w", err)
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value stores the month as YYYY-MM text.
func (m Month) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan reads a month stored as text.
func (m *Month) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return m.scanString(v)
	case []byte:
		return m.scanString(string(v))
	case time.Time:
		*m = MonthOf(v)
		return nil
	case nil:
		*m = Month{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into calendar.Month", src)
	}
}

func (m *Month) scanString(s string) error {
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// GormDataType tells gorm's migrator to use a text column.
func (Month) GormDataType() string { return "string" }
