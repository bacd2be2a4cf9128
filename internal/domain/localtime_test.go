package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLocalTime_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "nanoseconds",
			in:   time.Date(2025, 11, 16, 10, 20, 30, 123456789, time.Local),
			want: `"2025-11-16T10:20:30.123456789"`,
		},
		{
			name: "trailing zeros dropped",
			in:   time.Date(2025, 11, 16, 10, 20, 30, 500000000, time.Local),
			want: `"2025-11-16T10:20:30.5"`,
		},
		{
			name: "whole seconds",
			in:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local),
			want: `"2025-01-02T03:04:05"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(NewLocalTime(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestLocalTime_UnmarshalJSON(t *testing.T) {
	var lt LocalTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-11-16T10:20:30.123"`), &lt))

	want := time.Date(2025, 11, 16, 10, 20, 30, 123000000, time.Local)
	assert.True(t, lt.Time.Equal(want), "got %v, want %v", lt.Time, want)
}

func TestLocalTime_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []string{
		`123`,
		`"yesterday"`,
		`"2025-11-16 10:20:30"`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var lt LocalTime
			assert.Error(t, json.Unmarshal([]byte(input), &lt))
		})
	}
}

func TestLocalTime_JSONRoundTrip(t *testing.T) {
	original := NewLocalTime(time.Now())

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded LocalTime
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, decoded.Equal(original), "decoded %v, original %v", decoded, original)
}

func TestLocalTime_YAMLRoundTrip(t *testing.T) {
	original := NewLocalTime(time.Date(2025, 6, 1, 8, 30, 0, 42, time.Local))

	data, err := yaml.Marshal(map[string]LocalTime{"at": original})
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-06-01T08:30:00.000000042")

	var decoded map[string]LocalTime
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.True(t, decoded["at"].Equal(original))
}

func TestTask_JSONFieldNames(t *testing.T) {
	task := NewTask(7, "Write report", time.Date(2025, 2, 3, 4, 5, 6, 0, time.Local))

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(7), raw["id"])
	assert.Equal(t, "Write report", raw["description"])
	assert.Equal(t, "TODO", raw["status"])
	assert.Equal(t, "2025-02-03T04:05:06", raw["createdAt"])
	assert.Equal(t, "2025-02-03T04:05:06", raw["updatedAt"])
}
