package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var dt DateTime
	err := json.Unmarshal([]byte(`"2024-03-15T10:30:00"`), &dt)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), dt.Time)
}

func TestDateTimeUnmarshalJSONSpaceSeparated(t *testing.T) {
	var dt DateTime
	err := json.Unmarshal([]byte(`"2024-03-15 10:30:00"`), &dt)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), dt.Time)
}

func TestDateTimeUnmarshalJSONInvalid(t *testing.T) {
	var dt DateTime
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &dt))
	assert.Error(t, json.Unmarshal([]byte(`""`), &dt))
}

func TestDateTimeMarshalJSON(t *testing.T) {
	dt := NewDateTime(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15 10:30:00"`, string(data))
}

func TestDateTimeScan(t *testing.T) {
	var dt DateTime
	require.NoError(t, dt.Scan(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15 10:30:00", dt.Format("2006-01-02 15:04:05"))

	var fromString DateTime
	require.NoError(t, fromString.Scan("2024-03-15 10:30:00"))
	assert.Equal(t, dt.Time, fromString.Time)

	var bad DateTime
	assert.Error(t, bad.Scan(42))
}
