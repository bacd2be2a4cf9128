package domain

import (
	"fmt"
	"strings"
	"time"
)

// LocalTimeLayout is the on-disk timestamp layout: ISO-8601 local date-time
// without a zone offset. Trailing zero fractional digits are dropped.
const LocalTimeLayout = "2006-01-02T15:04:05.999999999"

// LocalTime is a wall-clock timestamp serialized without a zone.
// Values are interpreted in time.Local when decoded.
type LocalTime struct {
	time.Time
}

// NewLocalTime converts t to the local zone and strips the monotonic reading.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t.In(time.Local).Round(0)}
}

// localTimeMinuteLayout accepts timestamps written without seconds.
const localTimeMinuteLayout = "2006-01-02T15:04"

// ParseLocalTime parses a timestamp in LocalTimeLayout.
// Seconds may be omitted entirely, as some ISO-8601 writers do at :00.
func ParseLocalTime(s string) (LocalTime, error) {
	t, err := time.ParseInLocation(LocalTimeLayout, s, time.Local)
	if err != nil {
		var minuteErr error
		t, minuteErr = time.ParseInLocation(localTimeMinuteLayout, s, time.Local)
		if minuteErr != nil {
			return LocalTime{}, fmt.Errorf("parse local time %q: %w", s, err)
		}
	}
	return LocalTime{Time: t}, nil
}

// String formats the timestamp in LocalTimeLayout.
func (lt LocalTime) String() string {
	return lt.In(time.Local).Format(LocalTimeLayout)
}

// Equal reports whether both timestamps denote the same instant.
func (lt LocalTime) Equal(other LocalTime) bool {
	return lt.Time.Equal(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return fmt.Errorf("local time must be a JSON string, got %s", s)
	}
	parsed, err := ParseLocalTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (lt LocalTime) MarshalYAML() (any, error) {
	return lt.String(), nil
}

// UnmarshalYAML implements the yaml.v3 Unmarshaler through its decode callback form.
func (lt *LocalTime) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
