package shared

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (ISO 8601, no time-of-day).
const DateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or zone.
// It serializes as "YYYY-MM-DD" and maps to a PostgreSQL date column.
type Date struct {
	time.Time
}

// NewDate builds a Date from year/month/day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in the given location.
func Today(loc *time.Location) Date {
	y, m, d := time.Now().In(loc).Date()
	return NewDate(y, m, d)
}

// ParseDate parses an ISO calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// After reports whether d is strictly after other, comparing dates only.
func (d Date) After(other Date) bool {
	dy, dm, dd := d.Date()
	oy, om, od := other.Date()
	if dy != oy {
		return dy > oy
	}
	if dm != om {
		return dm > om
	}
	return dd > od
}

// Equal reports whether two values are the same calendar date.
func (d Date) Equal(other Date) bool {
	dy, dm, dd := d.Date()
	oy, om, od := other.Date()
	return dy == oy && dm == om && dd == od
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so pgx can read date columns into Date.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer for use as a query argument.
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}
