package ticktick_test

import (
	"testing"
	"time"

	"github.com/CarterT27/ticktick-cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	_, ok := ticktick.NewDate(2026, time.February, 29)
	assert.False(t, ok, "2026 is not a leap year")
	_, ok = ticktick.NewDate(2028, time.February, 29)
	assert.True(t, ok, "2028 is a leap year")
	_, ok = ticktick.NewDate(2026, time.Month(13), 1)
	assert.False(t, ok)
	_, ok = ticktick.NewDate(2026, time.April, 31)
	assert.False(t, ok)
}

func TestDateArithmetic(t *testing.T) {
	date := mustDate(t, 2026, time.February, 28)
	assert.Equal(t, "2026-03-01", date.AddDays(1).String())
	assert.Equal(t, "2026-02-21", date.AddDays(-7).String())
	assert.True(t, date.Before(date.AddDays(1)))
	assert.True(t, date.AddDays(1).After(date))
	assert.False(t, date.Before(date))
	assert.Equal(t, time.Saturday, date.Weekday())
}

func TestDateOf(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	// The calendar date is taken in the instant's own location.
	instant := time.Date(2026, time.June, 1, 23, 30, 0, 0, tokyo)
	assert.Equal(t, "2026-06-01", ticktick.DateOf(instant).String())
	assert.Equal(t, "2026-06-01", ticktick.DateOf(instant.UTC()).String())
}
