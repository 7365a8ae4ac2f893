package ticktick_test

import (
	"testing"
	"time"

	"github.com/CarterT27/ticktick-cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWindowFor(t *testing.T) {
	today := mustDate(t, 2026, time.February, 20)

	start, end := ticktick.DateWindowFor(ticktick.WhenToday, today)
	assert.Equal(t, "2026-02-20", start.String())
	assert.Equal(t, "2026-02-20", end.String())

	start, end = ticktick.DateWindowFor(ticktick.WhenTomorrow, today)
	assert.Equal(t, "2026-02-21", start.String())
	assert.Equal(t, "2026-02-21", end.String())

	start, end = ticktick.DateWindowFor(ticktick.WhenThisWeek, today)
	assert.Equal(t, "2026-02-16", start.String())
	assert.Equal(t, "2026-02-22", end.String())
}

func TestThisWeekWindowAlwaysContainsToday(t *testing.T) {
	for day := 1; day <= 28; day++ {
		today := mustDate(t, 2026, time.February, day)
		start, end := ticktick.DateWindowFor(ticktick.WhenThisWeek, today)
		assert.Equal(t, time.Monday, start.Weekday(), "from %s", today)
		assert.Equal(t, start.AddDays(6), end, "from %s", today)
		assert.False(t, today.Before(start), "from %s", today)
		assert.False(t, today.After(end), "from %s", today)
	}
}

func TestParseRecordDate(t *testing.T) {
	testCases := []struct {
		value string
		want  string // empty means unparseable
	}{
		{value: "1704067200000", want: "2024-01-01"}, // epoch milliseconds
		{value: "1704067200", want: "2024-01-01"},    // epoch seconds
		{value: "2026-03-01T00:00:00.000+0000", want: "2026-03-01"},
		{value: "2026-03-01T00:00:00+0000", want: "2026-03-01"},
		{value: "2026-03-01T00:00:00Z", want: "2026-03-01"},
		{value: "2026-03-01T09:30:00+05:30", want: "2026-03-01"},
		{value: "2026-03-01T00:00:00", want: "2026-03-01"}, // zone-less, first ten characters
		{value: "2026-03-01", want: "2026-03-01"},
		{value: ""},
		{value: "soon"},
		{value: "2026-13-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			date, ok := ticktick.ParseRecordDate(tc.value)
			if tc.want == "" {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				assert.Equal(t, tc.want, date.String())
			}
		})
	}
}

func TestTaskDate(t *testing.T) {
	task := &ticktick.Task{DueDate: "2026-03-01", StartDate: "2026-02-01"}
	date, ok := ticktick.TaskDate(task)
	require.True(t, ok)
	assert.Equal(t, "2026-03-01", date.String())

	// An unparseable due date falls back to the start date.
	task = &ticktick.Task{DueDate: "garbage", StartDate: "2026-02-01"}
	date, ok = ticktick.TaskDate(task)
	require.True(t, ok)
	assert.Equal(t, "2026-02-01", date.String())

	task = &ticktick.Task{StartDate: "2026-02-01"}
	date, ok = ticktick.TaskDate(task)
	require.True(t, ok)
	assert.Equal(t, "2026-02-01", date.String())

	_, ok = ticktick.TaskDate(&ticktick.Task{})
	assert.False(t, ok)
}

func TestMatchesWhenFilter(t *testing.T) {
	today := mustDate(t, 2026, time.February, 20)
	testCases := []struct {
		name string
		due  string
		when ticktick.WhenFilter
		want bool
	}{
		{name: "due today matches today", due: "2026-02-20", when: ticktick.WhenToday, want: true},
		{name: "due tomorrow misses today", due: "2026-02-21", when: ticktick.WhenToday, want: false},
		{name: "due tomorrow matches tomorrow", due: "2026-02-21", when: ticktick.WhenTomorrow, want: true},
		{name: "monday of week matches this week", due: "2026-02-16", when: ticktick.WhenThisWeek, want: true},
		{name: "sunday of week matches this week", due: "2026-02-22", when: ticktick.WhenThisWeek, want: true},
		{name: "next monday misses this week", due: "2026-02-23", when: ticktick.WhenThisWeek, want: false},
		{name: "no date never matches", due: "", when: ticktick.WhenToday, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			task := &ticktick.Task{DueDate: tc.due}
			assert.Equal(t, tc.want, ticktick.MatchesWhenFilter(task, tc.when, today))
		})
	}
}
