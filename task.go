package ticktick

// TaskStatus is the completion state of a task. The API encodes it as a bare number.
type TaskStatus int

const (
	StatusNormal    TaskStatus = 0
	StatusCompleted TaskStatus = 2
)

// Task describes a TickTick task as exposed by the Open API. It is used both to parse responses and to
// build create/update requests; optional fields marshal away when unset so requests only carry what the
// caller filled in. Date fields are strings because the API returns several encodings; use TaskDate or
// ParseRecordDate to interpret them.
type Task struct {
	ID            string          `json:"id,omitempty"`
	ProjectID     string          `json:"projectId,omitempty"`
	Title         string          `json:"title"`
	IsAllDay      *bool           `json:"isAllDay,omitempty"`
	CompletedTime string          `json:"completedTime,omitempty"`
	Content       string          `json:"content,omitempty"`
	Desc          string          `json:"desc,omitempty"`
	DueDate       string          `json:"dueDate,omitempty"`
	Items         []ChecklistItem `json:"items,omitempty"`
	Priority      *int            `json:"priority,omitempty"`
	Reminders     []string        `json:"reminders,omitempty"`
	RepeatFlag    string          `json:"repeatFlag,omitempty"`
	SortOrder     *int64          `json:"sortOrder,omitempty"`
	StartDate     string          `json:"startDate,omitempty"`
	Status        *TaskStatus     `json:"status,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	TimeZone      string          `json:"timeZone,omitempty"`
	Kind          string          `json:"kind,omitempty"`
}

// ChecklistItem is one subtask line inside a checklist task.
type ChecklistItem struct {
	ID            string      `json:"id,omitempty"`
	Title         string      `json:"title,omitempty"`
	Status        *TaskStatus `json:"status,omitempty"`
	CompletedTime string      `json:"completedTime,omitempty"`
	IsAllDay      *bool       `json:"isAllDay,omitempty"`
	SortOrder     *int64      `json:"sortOrder,omitempty"`
	StartDate     string      `json:"startDate,omitempty"`
	TimeZone      string      `json:"timeZone,omitempty"`
}

// Completed reports whether the task is done.
func (t *Task) Completed() bool {
	return t.Status != nil && *t.Status == StatusCompleted
}

// PriorityValue returns the task's priority, with unset meaning none (0).
func (t *Task) PriorityValue() int {
	if t.Priority == nil {
		return 0
	}
	return *t.Priority
}
