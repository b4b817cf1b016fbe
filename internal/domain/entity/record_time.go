package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// WireTimeLayout is how every timestamp crosses the wire: local time, no zone.
	WireTimeLayout = "2006-01-02 15:04:05"
	// FormTimeLayout is the minute-precision form used by datetime-local inputs.
	FormTimeLayout = "2006-01-02T15:04"
	// DateLayout is the calendar-day prefix of WireTimeLayout.
	DateLayout = "2006-01-02"
	// ClockLayout renders the time of day on record rows.
	ClockLayout = "15:04"
)

// accepted on input; servers sometimes emit an ISO separator or microseconds
var wireParseLayouts = []string{
	WireTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// RecordTime is a local wall-clock instant truncated to the second.
type RecordTime struct {
	time.Time
}

// NewRecordTime truncates t to second precision in the local zone.
func NewRecordTime(t time.Time) RecordTime {
	return RecordTime{Time: t.In(time.Local).Truncate(time.Second)}
}

// ParseWireTime parses "YYYY-MM-DD HH:MM:SS" (tolerating a T separator and fractional seconds).
func ParseWireTime(s string) (RecordTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range wireParseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return NewRecordTime(t), nil
		}
	}

	return RecordTime{}, errors.Errorf("invalid record time %q", s)
}

// ParseFormTime parses the minute-precision "YYYY-MM-DDTHH:MM" form by appending ":00".
func ParseFormTime(s string) (RecordTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RecordTime{}, errors.New("empty record time")
	}

	return ParseWireTime(strings.Replace(s, "T", " ", 1) + ":00")
}

// Wire renders the "YYYY-MM-DD HH:MM:SS" form.
func (t RecordTime) Wire() string {
	return t.Time.Format(WireTimeLayout)
}

// Form renders the "YYYY-MM-DDTHH:MM" form, dropping seconds.
func (t RecordTime) Form() string {
	return t.Time.Format(FormTimeLayout)
}

// Date renders the calendar day.
func (t RecordTime) Date() string {
	return t.Time.Format(DateLayout)
}

// Clock renders "HH:MM".
func (t RecordTime) Clock() string {
	return t.Time.Format(ClockLayout)
}

func (t RecordTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Wire())
}

func (t *RecordTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "record time must be a string")
	}

	parsed, err := ParseWireTime(raw)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}
