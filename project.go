package ticktick

// Project describes a TickTick list. TickTick calls lists "projects" in the API; the CLI surface sticks
// to "list" since that is what the apps show.
type Project struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	SortOrder  *int64 `json:"sortOrder,omitempty"`
	Closed     *bool  `json:"closed,omitempty"`
	GroupID    string `json:"groupId,omitempty"`
	ViewMode   string `json:"viewMode,omitempty"`
	Permission string `json:"permission,omitempty"`
	Kind       string `json:"kind,omitempty"`
}

// Column is a kanban column of a project in board view.
type Column struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	SortOrder *int64 `json:"sortOrder,omitempty"`
}

// ProjectData is the full contents of a project: the project itself, its tasks and its columns.
type ProjectData struct {
	Project Project  `json:"project"`
	Tasks   []Task   `json:"tasks,omitempty"`
	Columns []Column `json:"columns,omitempty"`
}

// Open reports whether the project is not closed/archived.
func (p *Project) Open() bool {
	return p.Closed == nil || !*p.Closed
}
