package ticktick

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// ErrStatusCode is returned in case the response from the API contains a status code that the client
// can't handle.
var ErrStatusCode = errors.New("unhandled status code")

type clientOption func(*Client) error

// WithEndpoint is a client option to set the endpoint when building a client with NewClient. This is
// meant to be used in tests only.
func WithEndpoint(endpoint string) clientOption {
	return func(c *Client) error {
		c.endpoint = endpoint
		return nil
	}
}

// WithWireLog is a client option to be passed to NewClient in order to log all requests and responses to
// the specified log file. Useful for debugging the client itself, shouldn't be needed in normal
// operation.
func WithWireLog(pathname string) clientOption {
	return func(c *Client) error {
		f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err == nil {
			c.wlog = f
		}
		return err
	}
}

// WithHTTPClient is a client option to replace the HTTP client used for API calls.
func WithHTTPClient(httpc *http.Client) clientOption {
	return func(c *Client) error {
		c.httpc = httpc
		return nil
	}
}

// Client is a TickTick Open API v1 client. For documentation on the API see
// https://developer.ticktick.com/docs. Unlike a sync-protocol client it holds no local copy of the data:
// every method maps to one HTTP request, and list/search filtering happens on the fetched slices (see
// TaskScan).
type Client struct {
	endpoint string

	// The OAuth access token that authenticates and authorizes API calls.
	token string

	// If non-nil, log all requests and responses to this file, one per line, in JSON format.
	wlog io.Writer

	httpc *http.Client
}

// NewClient creates a new client authenticated and authorized by the given access token.
func NewClient(token string, opts ...clientOption) (*Client, error) {
	c := &Client{
		endpoint: "https://api.ticktick.com/open/v1",
		token:    token,
		wlog:     io.Discard,
		httpc:    http.DefaultClient,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// do runs one API call. A non-nil in is marshalled as the JSON request body; a non-nil out receives the
// unmarshalled response body.
func (c *Client) do(method, path string, in, out interface{}) error {
	op := method + " " + path

	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", op, err)
		}
		_, _ = c.wlog.Write([]byte(`{"type": "request", "op": ` + strconv.Quote(op) + `, "body": `))
		_, _ = c.wlog.Write(b)
		_, _ = c.wlog.Write([]byte("}\n"))
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.endpoint+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	r, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.WithFields(log.Fields{
				"op":    op,
				"cause": err,
			}).Warning("Could not close response body")
		}
	}()

	b, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", op, err)
	}

	if r.StatusCode < 200 || r.StatusCode >= 300 {
		log.WithFields(log.Fields{
			"op":   op,
			"code": r.StatusCode,
			"text": string(b),
		}).Error("Unhandled response")
		return fmt.Errorf("%d: %w", r.StatusCode, ErrStatusCode)
	}

	if len(b) > 0 {
		_, _ = c.wlog.Write([]byte(`{"type": "response", "op": ` + strconv.Quote(op) + `, "body": `))
		_, _ = c.wlog.Write(b)
		_, _ = c.wlog.Write([]byte("}\n"))
	}
	if out != nil && len(b) > 0 {
		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("%s: unmarshal: %w", op, err)
		}
	}
	return nil
}

// Projects fetches all lists visible to the account.
func (c *Client) Projects() ([]Project, error) {
	var projects []Project
	if err := c.do(http.MethodGet, "/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Project fetches one list by id.
func (c *Client) Project(projectID string) (*Project, error) {
	var project Project
	if err := c.do(http.MethodGet, "/project/"+projectID, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ProjectData fetches a list together with its tasks and columns.
func (c *Client) ProjectData(projectID string) (*ProjectData, error) {
	var data ProjectData
	if err := c.do(http.MethodGet, "/project/"+projectID+"/data", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// InboxTasks fetches the tasks of the built-in inbox. The inbox's project object may be null in the
// response, so this doesn't reuse ProjectData.
func (c *Client) InboxTasks() ([]Task, error) {
	var data struct {
		Tasks []Task `json:"tasks"`
	}
	if err := c.do(http.MethodGet, "/project/inbox/data", nil, &data); err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// CreateProject creates a list and returns it with server-assigned fields filled in.
func (c *Client) CreateProject(project *Project) (*Project, error) {
	var created Project
	if err := c.do(http.MethodPost, "/project", project, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject updates a list. The API wants the whole object, so callers typically Project() first,
// mutate, then UpdateProject.
func (c *Client) UpdateProject(projectID string, project *Project) (*Project, error) {
	var updated Project
	if err := c.do(http.MethodPost, "/project/"+projectID, project, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject deletes a list.
func (c *Client) DeleteProject(projectID string) error {
	return c.do(http.MethodDelete, "/project/"+projectID, nil, nil)
}

// Task fetches one task. The API addresses tasks under their list.
func (c *Client) Task(projectID, taskID string) (*Task, error) {
	var task Task
	if err := c.do(http.MethodGet, "/project/"+projectID+"/task/"+taskID, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task and returns it with server-assigned fields filled in.
func (c *Client) CreateTask(task *Task) (*Task, error) {
	var created Task
	if err := c.do(http.MethodPost, "/task", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask updates a task. As with UpdateProject the API wants the whole object back.
func (c *Client) UpdateTask(taskID string, task *Task) (*Task, error) {
	var updated Task
	if err := c.do(http.MethodPost, "/task/"+taskID, task, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CompleteTask marks a task done.
func (c *Client) CompleteTask(projectID, taskID string) error {
	return c.do(http.MethodPost, "/project/"+projectID+"/task/"+taskID+"/complete", nil, nil)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(projectID, taskID string) error {
	return c.do(http.MethodDelete, "/project/"+projectID+"/task/"+taskID, nil, nil)
}
