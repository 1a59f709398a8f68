package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateOnly is a calendar date without a time component, stored as a DATE
// column and serialized as "YYYY-MM-DD".
type DateOnly struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func Today() DateOnly {
	return NewDateOnly(time.Now().UTC())
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Time.Equal(other.Time)
}

func (d DateOnly) Before(other DateOnly) bool {
	return d.Time.Before(other.Time)
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan type %T into DateOnly", value)
	}
}

func (d *DateOnly) parse(s string) error {
	// SQLite hands dates back as text, with or without a time component.
	layouts := []string{
		dateLayout,
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			d.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as DateOnly", s)
}

// GormDataType tells the migrator to use a DATE column.
func (DateOnly) GormDataType() string {
	return "date"
}
