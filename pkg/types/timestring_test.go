package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30", ts.String())

	for _, bad := range []string{"", "8:30am", "24:00", "12:60", "noon"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 10, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("12:01").IsAfter("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("08:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:15"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringMinutesUntil(t *testing.T) {
	d, err := TimeString("08:00").MinutesUntil("18:00")
	require.NoError(t, err)
	assert.Equal(t, 600, d)

	d, err = TimeString("18:00").MinutesUntil("08:00")
	require.NoError(t, err)
	assert.Equal(t, -600, d)
}
