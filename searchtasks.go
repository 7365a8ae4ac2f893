package ticktick

import "strings"

type taskPredicate func(*Task) bool

func negate(p taskPredicate) taskPredicate {
	return func(task *Task) bool {
		return !p(task)
	}
}

// TaskScan filters a fetched slice of tasks by chaining predicates; a task is kept when every predicate
// holds. The Open API has no server-side query parameters, so all list filtering happens here.
type TaskScan struct {
	tasks      []Task
	predicates []taskPredicate
}

func ScanTasks(tasks []Task) *TaskScan {
	return &TaskScan{tasks: tasks}
}

// Not negates the last predicate added. It will panic if no predicates were added.
func (s *TaskScan) Not() *TaskScan {
	i := len(s.predicates) - 1
	s.predicates[i] = negate(s.predicates[i])
	return s
}

func (s *TaskScan) WithCompleted(value bool) *TaskScan {
	s.predicates = append(s.predicates, func(task *Task) bool {
		return task.Completed() == value
	})
	return s
}

// WithPriority keeps tasks with exactly the given priority; a task with no priority counts as 0.
func (s *TaskScan) WithPriority(value int) *TaskScan {
	s.predicates = append(s.predicates, func(task *Task) bool {
		return task.PriorityValue() == value
	})
	return s
}

// WithTags keeps tasks carrying a case-insensitive match for every required tag.
func (s *TaskScan) WithTags(required ...string) *TaskScan {
	s.predicates = append(s.predicates, func(task *Task) bool {
		return HasAllTags(task, required)
	})
	return s
}

// WithWhen keeps tasks whose resolved date falls in the window for when, relative to today.
func (s *TaskScan) WithWhen(when WhenFilter, today Date) *TaskScan {
	s.predicates = append(s.predicates, func(task *Task) bool {
		return MatchesWhenFilter(task, when, today)
	})
	return s
}

// WithTerms keeps tasks whose title, content or description contains every term, case-insensitively.
func (s *TaskScan) WithTerms(terms ...string) *TaskScan {
	needles := make([]string, len(terms))
	for i, term := range terms {
		needles[i] = strings.ToLower(term)
	}
	s.predicates = append(s.predicates, func(task *Task) bool {
		haystack := strings.ToLower(task.Title + " " + task.Content + " " + task.Desc)
		for _, needle := range needles {
			if !strings.Contains(haystack, needle) {
				return false
			}
		}
		return true
	})
	return s
}

func (s *TaskScan) Results() []Task {
	var results []Task
	for i := range s.tasks {
		if s.match(&s.tasks[i]) {
			results = append(results, s.tasks[i])
		}
	}
	return results
}

func (s *TaskScan) match(task *Task) bool {
	for _, match := range s.predicates {
		if !match(task) {
			return false
		}
	}
	return true
}
