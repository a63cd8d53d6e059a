package model

import (
	"bytes"
	"database/sql/driver"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

const DayLayout = "2006-01-02"

// Day is a calendar date stored in a postgres date column.
// On the wire it is "YYYY-MM-DD"; the zero value is null.
type Day struct {
	datatypes.Date
}

func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

func ParseDay(s string) (Day, error) {
	if s == "" {
		return Day{}, nil
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return Day{}, err
		}
	}
	return NewDay(t), nil
}

func MustDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Day) Time() time.Time { return time.Time(d.Date) }

func (d Day) IsZero() bool { return d.Time().IsZero() }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DayLayout)
}

func (d Day) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Date.Value()
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Day{}
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
