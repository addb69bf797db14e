package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PORTAL_NAME", "Veng Cup")
	t.Setenv("PORTAL_EMPTY", "")

	assert.Equal(t, "Veng Cup", GetEnv("PORTAL_NAME", "default"))
	assert.Equal(t, "default", GetEnv("PORTAL_EMPTY", "default"))
	assert.Equal(t, "default", GetEnv("PORTAL_UNSET_KEY", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "attempts", value: "4", want: 4},
		{name: "negative", value: "-2", want: -2},
		{name: "garbage falls back", value: "three", want: 3},
		{name: "float falls back", value: "2.5", want: 3},
		{name: "unset", value: "", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BACKEND_TEST_ATTEMPTS", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("BACKEND_TEST_ATTEMPTS", 3))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "seconds", value: "30s", want: 30 * time.Second},
		{name: "compound", value: "1h30m", want: 90 * time.Minute},
		{name: "bare number falls back", value: "30", want: time.Second},
		{name: "unset", value: "", want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BACKEND_TEST_DELAY", tt.value)
			assert.Equal(t, tt.want, GetEnvDuration("BACKEND_TEST_DELAY", time.Second))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{value: "true", fallback: false, want: true},
		{value: "0", fallback: true, want: false},
		{value: "yes", fallback: true, want: true},
		{value: "", fallback: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PORTAL_TEST_FLAG", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("PORTAL_TEST_FLAG", tt.fallback))
		})
	}
}

func TestGetEnvList(t *testing.T) {
	t.Run("comma separated", func(t *testing.T) {
		t.Setenv("TEST_LIST", "a, b ,,c")
		assert.Equal(t, []string{"a", "b", "c"}, GetEnvList("TEST_LIST", nil))
	})

	t.Run("missing env var", func(t *testing.T) {
		t.Setenv("TEST_LIST_MISSING", "")
		assert.Equal(t, []string{"*"}, GetEnvList("TEST_LIST_MISSING", []string{"*"}))
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("TEST_LIST_BLANK", " , ,")
		assert.Equal(t, []string{"x"}, GetEnvList("TEST_LIST_BLANK", []string{"x"}))
	})
}
