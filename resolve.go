package ticktick

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuchList is returned when a list name matches no project, even after normalization.
var ErrNoSuchList = errors.New("no such list")

// ErrNoSuchTask is returned when a task id cannot be located in any accessible list.
var ErrNoSuchTask = errors.New("no such task")

// ErrNoProjects is returned when the account has no lists at all to pick a default from.
var ErrNoProjects = errors.New("no lists found")

// ResolveListID finds the project a list name refers to: first by exact case-insensitive name, then by
// comparing normalized forms, so that "~personal" matches a list named "🚀Personal".
func (c *Client) ResolveListID(listName string) (string, error) {
	projects, err := c.Projects()
	if err != nil {
		return "", err
	}
	needle := NormalizeListName(listName)
	for i := range projects {
		p := &projects[i]
		if strings.EqualFold(p.Name, listName) || (needle != "" && NormalizeListName(p.Name) == needle) {
			if p.ID == "" {
				return "", fmt.Errorf("%q has no project id: %w", listName, ErrNoSuchList)
			}
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("%q: %w", listName, ErrNoSuchList)
}

// DefaultProjectID picks where a task lands when neither a project id nor a list name was given: the
// inbox when the API exposes it, else a list literally named inbox, else the first open list, else the
// first list.
func (c *Client) DefaultProjectID() (string, error) {
	projects, err := c.Projects()
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "", ErrNoProjects
	}
	byKind := func(p *Project) bool { return p.Kind == "INBOX" }
	byName := func(p *Project) bool { return strings.EqualFold(p.Name, "inbox") }
	open := func(p *Project) bool { return p.Open() }
	for _, match := range []func(*Project) bool{byKind, byName, open} {
		for i := range projects {
			if match(&projects[i]) && projects[i].ID != "" {
				return projects[i].ID, nil
			}
		}
	}
	if projects[0].ID == "" {
		return "", fmt.Errorf("default list has no project id: %w", ErrNoProjects)
	}
	return projects[0].ID, nil
}

// ProjectTasks fetches the tasks of one list.
func (c *Client) ProjectTasks(projectID string) ([]Task, error) {
	data, err := c.ProjectData(projectID)
	if err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// AllTasks fetches the tasks of every list the account can see. The Open API has no cross-list query, so
// this is one ProjectData call per list.
func (c *Client) AllTasks() ([]Task, error) {
	projects, err := c.Projects()
	if err != nil {
		return nil, err
	}
	var tasks []Task
	for i := range projects {
		if projects[i].ID == "" {
			continue
		}
		projectTasks, err := c.ProjectTasks(projects[i].ID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, projectTasks...)
	}
	return tasks, nil
}

// FindTaskProject locates the list containing taskID by scanning project data. Task endpoints are
// addressed under their list, so commands that only got a task id need this.
func (c *Client) FindTaskProject(taskID string) (string, error) {
	projects, err := c.Projects()
	if err != nil {
		return "", err
	}
	for i := range projects {
		if projects[i].ID == "" {
			continue
		}
		tasks, err := c.ProjectTasks(projects[i].ID)
		if err != nil {
			return "", err
		}
		for j := range tasks {
			if tasks[j].ID == taskID {
				return projects[i].ID, nil
			}
		}
	}
	return "", fmt.Errorf("%q: %w", taskID, ErrNoSuchTask)
}
