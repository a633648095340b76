package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	dateTimeInputLayout  = "2006-01-02T15:04:05"
	dateTimeOutputLayout = "2006-01-02 15:04:05"
)

// DateTime is the timestamp type used on all date columns. The API accepts
// "2006-01-02T15:04:05" (and the space-separated variant) and always renders
// "2006-01-02 15:04:05" in responses.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.Format(dateTimeOutputLayout) + `"`), nil
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("date value is required")
	}
	t, err := time.Parse(dateTimeInputLayout, s)
	if err != nil {
		t, err = time.Parse(dateTimeOutputLayout, s)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %s", s, dateTimeInputLayout)
	}
	dt.Time = t
	return nil
}

func (dt DateTime) Value() (driver.Value, error) {
	return dt.Time, nil
}

func (dt *DateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		dt.Time = v
		return nil
	case string:
		return dt.scanString(v)
	case []byte:
		return dt.scanString(string(v))
	case nil:
		dt.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
}

func (dt *DateTime) scanString(s string) error {
	layouts := []string{
		dateTimeOutputLayout,
		dateTimeInputLayout,
		"2006-01-02 15:04:05.999999999-07:00",
		time.RFC3339Nano,
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			dt.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into DateTime", s)
}

// GormDataType maps DateTime to the dialect's timestamp column type.
func (DateTime) GormDataType() string {
	return "time"
}
