package ticktick_test

import (
	"testing"

	"github.com/CarterT27/ticktick-cli"
	"github.com/stretchr/testify/assert"
)

func TestMergeTags(t *testing.T) {
	testCases := []struct {
		name     string
		existing []string
		extras   []string
		want     []string
	}{
		{
			name:   "into empty",
			extras: []string{"work", "urgent"},
			want:   []string{"work", "urgent"},
		},
		{
			name:     "case-insensitive duplicate keeps first casing",
			existing: []string{"Work"},
			extras:   []string{"work", "home"},
			want:     []string{"Work", "home"},
		},
		{
			name:     "nothing to add",
			existing: []string{"a", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:   "duplicate extras collapse",
			extras: []string{"x", "X", "x"},
			want:   []string{"x"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			merged := ticktick.MergeTags(tc.existing, tc.extras)
			assert.Equal(t, tc.want, merged)
			// Applying the same extras again changes nothing.
			assert.Equal(t, tc.want, ticktick.MergeTags(merged, tc.extras))
		})
	}
}

func TestHasAllTags(t *testing.T) {
	task := &ticktick.Task{Tags: []string{"Work", "urgent"}}
	assert.True(t, ticktick.HasAllTags(task, []string{"work"}))
	assert.True(t, ticktick.HasAllTags(task, []string{"URGENT", "Work"}))
	assert.False(t, ticktick.HasAllTags(task, []string{"work", "home"}))
	assert.True(t, ticktick.HasAllTags(task, nil))

	// A task without tags never matches, even with nothing required.
	assert.False(t, ticktick.HasAllTags(&ticktick.Task{}, nil))
	assert.False(t, ticktick.HasAllTags(&ticktick.Task{}, []string{"work"}))
}

func TestNormalizeListName(t *testing.T) {
	testCases := []struct {
		value string
		want  string
	}{
		{value: "Personal", want: "personal"},
		{value: "🚀Personal", want: "personal"},
		{value: "👨🏻‍💻 Projects", want: "projects"},
		{value: "  Personal   Team ", want: "personal team"},
		{value: "Q3 (drafts)", want: "q3 drafts"},
		{value: "🎯", want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, ticktick.NormalizeListName(tc.value))
		})
	}
}
