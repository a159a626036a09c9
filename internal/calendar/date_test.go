package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, 18, d.Day())
	assert.Equal(t, NewMonth(2026, time.October), d.Month())
	assert.Equal(t, "2026-10-18", d.String())

	for _, input := range []string{"", "2026-10", "2026-02-30", "18/10/2026", "2026-10-18T00:00:00Z"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2026, time.October, 1)
	b := NewDate(2026, time.October, 18)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(NewDate(2026, time.October, 1)))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(payload{Date: NewDate(2026, time.October, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-05"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-03-14"}`), &p))
	assert.Equal(t, NewDate(2026, time.March, 14), p.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-03-14T22:30:00Z"}`), &p))
	assert.Equal(t, NewDate(2026, time.March, 14), p.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2026, time.October, 18), d)

	require.NoError(t, d.Scan("2025-12-31"))
	assert.Equal(t, NewDate(2025, time.December, 31), d)

	require.NoError(t, d.Scan([]byte("2025-01-02 00:00:00")))
	assert.Equal(t, NewDate(2025, time.January, 2), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(3.14))
}

func TestNewDate_Normalizes(t *testing.T) {
	assert.Equal(t, NewDate(2026, time.March, 1), NewDate(2026, time.February, 29))
}
