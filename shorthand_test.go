package ticktick_test

import (
	"testing"

	"github.com/CarterT27/ticktick-cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractShorthand(t *testing.T) {
	testCases := []struct {
		raw      string
		priority *int // nil means no priority marker consumed
		list     string
		tags     []string
		when     ticktick.WhenFilter
		terms    []string
	}{
		{
			raw:   "buy milk",
			terms: []string{"buy", "milk"},
		},
		{
			raw:      "buy milk !high",
			priority: intp(5),
			terms:    []string{"buy", "milk"},
		},
		{
			raw:      "!MEDIUM review",
			priority: intp(3),
			terms:    []string{"review"},
		},
		{
			raw:      "!low !none chores", // last marker wins
			priority: intp(0),
			terms:    []string{"chores"},
		},
		{
			raw:   "fix !urgent bug", // unknown level is not consumed
			terms: []string{"fix", "!urgent", "bug"},
		},
		{
			raw:   "file ~Work report",
			list:  "Work",
			terms: []string{"file", "report"},
		},
		{
			raw:   "file ~Work ~Home report", // last list wins
			list:  "Home",
			terms: []string{"file", "report"},
		},
		{
			raw:   "weird ~ token", // bare marker is not consumed
			terms: []string{"weird", "~", "token"},
		},
		{
			raw:   "email #urgent #Work boss",
			tags:  []string{"urgent", "Work"},
			terms: []string{"email", "boss"},
		},
		{
			raw:   "email #urgent #urgent boss", // duplicates kept here, merged downstream
			tags:  []string{"urgent", "urgent"},
			terms: []string{"email", "boss"},
		},
		{
			raw:   "weird # token",
			terms: []string{"weird", "#", "token"},
		},
		{
			raw:   "review today",
			when:  ticktick.WhenToday,
			terms: []string{"review"},
		},
		{
			raw:   "review Tomorrow",
			when:  ticktick.WhenTomorrow,
			terms: []string{"review"},
		},
		{
			raw:   "review week",
			when:  ticktick.WhenThisWeek,
			terms: []string{"review"},
		},
		{
			raw:   "review this-week",
			when:  ticktick.WhenThisWeek,
			terms: []string{"review"},
		},
		{
			raw:   "review this week", // two-token phrase
			when:  ticktick.WhenThisWeek,
			terms: []string{"review"},
		},
		{
			raw:   "discuss this proposal", // "this" without "week" is an ordinary term
			terms: []string{"discuss", "this", "proposal"},
		},
		{
			raw:      "report !high ~Work #q3 today done",
			priority: intp(5),
			list:     "Work",
			tags:     []string{"q3"},
			when:     ticktick.WhenToday,
			terms:    []string{"report", "done"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			parsed := ticktick.ExtractShorthand(tc.raw, true)
			if tc.priority == nil {
				assert.Nil(t, parsed.Priority)
			} else {
				require.NotNil(t, parsed.Priority)
				assert.Equal(t, *tc.priority, *parsed.Priority)
			}
			assert.Equal(t, tc.list, parsed.List)
			assert.Equal(t, tc.tags, parsed.Tags)
			assert.Equal(t, tc.when, parsed.When)
			assert.Equal(t, tc.terms, parsed.Terms)
		})
	}
}

func TestExtractShorthandKeepsTemporalWordsWhenDisabled(t *testing.T) {
	parsed := ticktick.ExtractShorthand("review this week !low", false)
	assert.Equal(t, ticktick.WhenNone, parsed.When)
	assert.Equal(t, []string{"review", "this", "week"}, parsed.Terms)
	require.NotNil(t, parsed.Priority)
	assert.Equal(t, 1, *parsed.Priority)
}

func TestParseWhenFilter(t *testing.T) {
	for token, want := range map[string]ticktick.WhenFilter{
		"today":     ticktick.WhenToday,
		"TODAY":     ticktick.WhenToday,
		"tomorrow":  ticktick.WhenTomorrow,
		"week":      ticktick.WhenThisWeek,
		"thisweek":  ticktick.WhenThisWeek,
		"This-Week": ticktick.WhenThisWeek,
	} {
		when, ok := ticktick.ParseWhenFilter(token)
		require.True(t, ok, token)
		assert.Equal(t, want, when, token)
	}
	_, ok := ticktick.ParseWhenFilter("yesterday")
	assert.False(t, ok)
}

func intp(value int) *int { return &value }
