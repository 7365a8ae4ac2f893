package ticktick_test

import (
	"testing"
	"time"

	"github.com/CarterT27/ticktick-cli"
	"github.com/stretchr/testify/assert"
)

func scanFixture() []ticktick.Task {
	completed := ticktick.StatusCompleted
	high := 5
	return []ticktick.Task{
		{ID: "1", Title: "Buy milk", Tags: []string{"errands"}, DueDate: "2026-02-20"},
		{ID: "2", Title: "Ship release", Content: "cut the branch", Priority: &high, DueDate: "2026-02-23"},
		{ID: "3", Title: "Old chore", Status: &completed},
		{ID: "4", Title: "Read book", Desc: "library copy"},
	}
}

func ids(tasks []ticktick.Task) []string {
	var out []string
	for i := range tasks {
		out = append(out, tasks[i].ID)
	}
	return out
}

func TestScanTasks(t *testing.T) {
	today := mustDate(t, 2026, time.February, 20)
	testCases := []struct {
		name string
		scan func(*ticktick.TaskScan) *ticktick.TaskScan
		want []string
	}{
		{
			name: "no predicates keeps everything",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s },
			want: []string{"1", "2", "3", "4"},
		},
		{
			name: "open tasks only",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithCompleted(false) },
			want: []string{"1", "2", "4"},
		},
		{
			name: "completed via negation",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithCompleted(false).Not() },
			want: []string{"3"},
		},
		{
			name: "by priority",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithPriority(5) },
			want: []string{"2"},
		},
		{
			name: "missing priority counts as none",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithPriority(0) },
			want: []string{"1", "3", "4"},
		},
		{
			name: "by tag",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithTags("Errands") },
			want: []string{"1"},
		},
		{
			name: "due today",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithWhen(ticktick.WhenToday, today) },
			want: []string{"1"},
		},
		{
			name: "terms search title content and description",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithTerms("BRANCH") },
			want: []string{"2"},
		},
		{
			name: "all terms must match",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithTerms("read", "library") },
			want: []string{"4"},
		},
		{
			name: "chained predicates",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan {
				return s.WithCompleted(false).WithPriority(5).WithTerms("ship")
			},
			want: []string{"2"},
		},
		{
			name: "nothing matches",
			scan: func(s *ticktick.TaskScan) *ticktick.TaskScan { return s.WithTerms("absent") },
			want: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results := tc.scan(ticktick.ScanTasks(scanFixture())).Results()
			assert.Equal(t, tc.want, ids(results))
		})
	}
}
