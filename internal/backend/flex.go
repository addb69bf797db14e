package backend

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"
)

// The endpoint serializes spreadsheet cells, so a number may arrive as a
// string, a flag as "TRUE" and a date as a timestamp. The flex types below
// never fail to decode: malformed input becomes the zero value.

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	*f = flexString(scalarText(data))
	return nil
}

type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	n, ok := parseNumber(scalarText(data))
	if !ok {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

// flexOptInt distinguishes an empty cell from zero. Scores use it.
type flexOptInt struct {
	value int
	valid bool
}

func (f *flexOptInt) UnmarshalJSON(data []byte) error {
	n, ok := parseNumber(scalarText(data))
	*f = flexOptInt{value: n, valid: ok}
	return nil
}

func (f flexOptInt) ptr() *int {
	if !f.valid {
		return nil
	}
	v := f.value
	return &v
}

type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	b, err := strconv.ParseBool(strings.ToLower(scalarText(data)))
	*f = flexBool(err == nil && b)
	return nil
}

type flexTime time.Time

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	*f = flexTime(parseTime(scalarText(data)))
	return nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// scalarText returns the text of a JSON string, number or bool.
// null, objects and arrays yield "".
func scalarText(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '{', '[', 'n':
		return ""
	default:
		return string(data)
	}
}

func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(f)), true
}
