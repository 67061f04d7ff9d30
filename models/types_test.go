package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(Money(0))
	require.NoError(t, err)
	assert.Equal(t, `"0.00"`, string(b))

	b, err = json.Marshal(Money(1234.5))
	require.NoError(t, err)
	assert.Equal(t, `"1234.50"`, string(b))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"25.00"`), &m))
	assert.Equal(t, Money(25), m)

	require.NoError(t, json.Unmarshal([]byte(`30`), &m))
	assert.Equal(t, Money(30), m)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.January, 20)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-20"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-12-05"`), &parsed))
	assert.Equal(t, "2025-12-05", parsed.String())

	// Timestamp input is truncated to the calendar date.
	require.NoError(t, json.Unmarshal([]byte(`"2025-12-05 19:30:00"`), &parsed))
	assert.Equal(t, "2025-12-05", parsed.String())

	assert.Error(t, json.Unmarshal([]byte(`"05/12/2025"`), &parsed))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2025-06-01", d.String())
}
