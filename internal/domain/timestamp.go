package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISOLayout matches JavaScript's Date.prototype.toISOString.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// localLayout is how the seed orders were written: no zone, read as local time.
const localLayout = "2006-01-02T15:04:05"

// Timestamp время создания заказа. Помнит исходную строку, чтобы сохранённые
// данные сериализовались обратно байт в байт. Строка, которую не удалось
// разобрать, и null сохраняются как есть, время при этом нулевое.
type Timestamp struct {
	t    time.Time
	raw  string
	null bool
}

// NewTimestamp returns t in UTC, truncated to milliseconds.
func NewTimestamp(t time.Time) Timestamp {
	t = t.UTC().Truncate(time.Millisecond)
	return Timestamp{t: t, raw: t.Format(ISOLayout)}
}

// ParseTimestamp accepts the ISO layout, the zone-less seed layout and RFC 3339.
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(ISOLayout, s); err == nil {
		return Timestamp{t: t, raw: s}, nil
	}
	if t, err := time.ParseInLocation(localLayout, s, time.Local); err == nil {
		return Timestamp{t: t, raw: s}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{t: t, raw: s}, nil
}

// MustParseTimestamp is for literals known to be valid.
func MustParseTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (ts Timestamp) Time() time.Time { return ts.t }

// IsZero reports whether no point in time is known: null, unparseable or unset.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

func (ts Timestamp) String() string {
	if ts.null {
		return ""
	}
	if ts.raw != "" {
		return ts.raw
	}
	return ts.t.UTC().Format(ISOLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.null {
		return []byte("null"), nil
	}
	return json.Marshal(ts.String())
}

// UnmarshalJSON accepts any string or null; only other JSON types are an error.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*ts = Timestamp{null: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		*ts = Timestamp{raw: s}
		return nil
	}
	*ts = parsed
	return nil
}
