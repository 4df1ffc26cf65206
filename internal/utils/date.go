package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day without a time-of-day component. All reading
// dates and goal windows are computed against the server's local calendar.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{time.Date(year, month, day, 0, 0, 0, 0, t.Location())}
}

func Today() Date {
	return DateOf(time.Now())
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	// Drivers may hand back either a bare date or a full timestamp.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// AnnualWindow returns Jan 1 through Dec 31 of t's year.
func AnnualWindow(t time.Time) (Date, Date) {
	start := Date{time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())}
	end := Date{time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location())}
	return start, end
}

// MonthlyWindow returns the first through the last day of t's month.
func MonthlyWindow(t time.Time) (Date, Date) {
	start := Date{time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())}
	end := Date{start.AddDate(0, 1, -1)}
	return start, end
}

// DaysUntil returns the number of whole days from `from` until `to`,
// never negative.
func DaysUntil(from, to Date) int {
	days := int(to.Sub(from.Time).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
