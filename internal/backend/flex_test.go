package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexInt(t *testing.T) {
	tests := map[string]int{
		`7`:      7,
		`"7"`:    7,
		`" 12 "`: 12,
		`7.6`:    8,
		`""`:     0,
		`null`:   0,
		`"abc"`:  0,
		`true`:   0,
		`{}`:     0,
		`[1]`:    0,
	}

	for raw, want := range tests {
		var v flexInt
		assert.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.Equal(t, want, int(v), raw)
	}
}

func TestFlexOptInt(t *testing.T) {
	var v flexOptInt
	assert.NoError(t, json.Unmarshal([]byte(`""`), &v))
	assert.Nil(t, v.ptr())

	assert.NoError(t, json.Unmarshal([]byte(`"0"`), &v))
	if assert.NotNil(t, v.ptr()) {
		assert.Equal(t, 0, *v.ptr())
	}
}

func TestFlexBool(t *testing.T) {
	tests := map[string]bool{
		`true`:    true,
		`"TRUE"`:  true,
		`"true"`:  true,
		`1`:       true,
		`"1"`:     true,
		`false`:   false,
		`"FALSE"`: false,
		`0`:       false,
		`""`:      false,
		`null`:    false,
		`"yes"`:   false,
	}

	for raw, want := range tests {
		var v flexBool
		assert.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.Equal(t, want, bool(v), raw)
	}
}

func TestFlexString(t *testing.T) {
	tests := map[string]string{
		`"tm_1"`: "tm_1",
		`42`:     "42",
		`true`:   "true",
		`null`:   "",
		`{}`:     "",
	}

	for raw, want := range tests {
		var v flexString
		assert.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.Equal(t, want, string(v), raw)
	}
}

func TestParseTime(t *testing.T) {
	assert.False(t, parseTime("2024-05-02T12:00:00.000Z").IsZero())
	assert.False(t, parseTime("2024-05-02 12:00:00").IsZero())
	assert.False(t, parseTime("2024-05-02").IsZero())
	assert.True(t, parseTime("yesterday").IsZero())
	assert.True(t, parseTime("").IsZero())
}
