package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(1988, time.November, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1988-11-05"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestDate_UnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"05/11/1988"`), &d))
}

func TestDate_UnmarshalNullIsNoop(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_ScanFromTimeAndString(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2001, time.March, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2001-03-09", d.String())

	var fromStr Date
	require.NoError(t, fromStr.Scan("2001-03-09"))
	assert.True(t, d.Equal(fromStr.Time))

	var fromNil Date
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_BeforeComparesAtDayGranularity(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)

	yesterday := NewDate(2026, time.August, 27)
	assert.True(t, yesterday.Before(now))

	// Same calendar day is not "before", whatever the time of day.
	today := NewDate(2026, time.August, 28)
	assert.False(t, today.Before(now))

	tomorrow := NewDate(2026, time.August, 29)
	assert.False(t, tomorrow.Before(now))
}
