package things

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client provides typed access to Things 3 via AppleScript automation.
// It is stateless: every call renders a script, executes it and parses
// the reply; nothing about the Things database is cached between calls.
type Client struct {
	runner Runner
}

// NewClient creates a client backed by the osascript binary.
// It fails early when osascript is not available, since Things
// automation only works on macOS.
func NewClient() (*Client, error) {
	if _, err := exec.LookPath("osascript"); err != nil {
		return nil, &ThingsError{
			Op:  "initialize",
			Err: fmt.Errorf("osascript not found in PATH; Things automation requires macOS"),
		}
	}
	return &Client{runner: NewOsascriptRunner()}, nil
}

// NewClientWithRunner creates a client with a custom runner. Used by
// tests to substitute a fake executor.
func NewClientWithRunner(r Runner) *Client {
	return &Client{runner: r}
}

// AddTask creates a new to-do and returns the ID assigned by Things.
func (c *Client) AddTask(ctx context.Context, req AddTaskRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", &ThingsError{
			Op:  "addTask",
			Err: &ValidationError{Field: "title", Reason: "must not be empty"},
		}
	}

	id, err := c.runner.Run(ctx, buildAddTaskScript(req))
	if err != nil {
		return "", &ThingsError{Op: "addTask", Err: err}
	}
	if id == "" {
		return "", &ThingsError{Op: "addTask", Err: fmt.Errorf("Things returned no task ID")}
	}
	return id, nil
}

// ListTasks returns up to limit tasks from the named built-in list.
// Unknown list names fall back to Today; a non-positive limit uses
// DefaultTaskLimit. Ordering is whatever Things reports natively.
func (c *Client) ListTasks(ctx context.Context, list string, limit int) ([]Task, error) {
	if limit <= 0 {
		limit = DefaultTaskLimit
	}

	out, err := c.runner.Run(ctx, buildListTasksScript(list, limit))
	if err != nil {
		return nil, &ThingsError{Op: "listTasks", Err: err}
	}
	return parseTasks(out), nil
}

// CompleteTask marks a task as completed. The identifier is resolved
// first as a task ID and then as a title; when both lookups fail the
// error unwraps to ErrNotFound rather than a generic scripting failure.
func (c *Client) CompleteTask(ctx context.Context, identifier string) (FoundBy, error) {
	if strings.TrimSpace(identifier) == "" {
		return "", &ThingsError{
			Op:  "completeTask",
			Err: &ValidationError{Field: "task_id", Reason: "must not be empty"},
		}
	}

	out, err := c.runner.Run(ctx, buildCompleteTaskScript(identifier))
	if err != nil {
		return "", &ThingsError{Op: "completeTask", Err: err}
	}

	switch out {
	case markerFoundByID:
		return FoundByID, nil
	case markerFoundByTitle:
		return FoundByTitle, nil
	case markerNotFound:
		return "", &ThingsError{Op: "completeTask", Err: ErrNotFound}
	default:
		return "", &ThingsError{Op: "completeTask", Err: fmt.Errorf("unexpected reply %q", out)}
	}
}

// SearchTasks returns up to limit tasks whose name or notes contain the
// query. The search stops traversing as soon as limit matches are found.
func (c *Client) SearchTasks(ctx context.Context, query string, limit int) ([]Task, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ThingsError{
			Op:  "searchTasks",
			Err: &ValidationError{Field: "query", Reason: "must not be empty"},
		}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	out, err := c.runner.Run(ctx, buildSearchTasksScript(query, limit))
	if err != nil {
		return nil, &ThingsError{Op: "searchTasks", Err: err}
	}
	return parseTaskSummaries(out), nil
}

// ListProjects returns projects filtered by status ("open",
// "completed", or anything else for all).
func (c *Client) ListProjects(ctx context.Context, status string) ([]Project, error) {
	out, err := c.runner.Run(ctx, buildListProjectsScript(status))
	if err != nil {
		return nil, &ThingsError{Op: "listProjects", Err: err}
	}
	return parseProjects(out), nil
}

// AddProject creates a new project and returns the ID assigned by
// Things.
func (c *Client) AddProject(ctx context.Context, req AddProjectRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", &ThingsError{
			Op:  "addProject",
			Err: &ValidationError{Field: "title", Reason: "must not be empty"},
		}
	}

	id, err := c.runner.Run(ctx, buildAddProjectScript(req))
	if err != nil {
		return "", &ThingsError{Op: "addProject", Err: err}
	}
	if id == "" {
		return "", &ThingsError{Op: "addProject", Err: fmt.Errorf("Things returned no project ID")}
	}
	return id, nil
}

// DailyOverview returns the assembled overview text: today's tasks,
// upcoming tasks and active projects with open task counts.
func (c *Client) DailyOverview(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, buildDailyOverviewScript())
	if err != nil {
		return "", &ThingsError{Op: "dailyOverview", Err: err}
	}
	return out, nil
}

// UpdateTask applies the set fields of req to an existing task,
// resolving the identifier ID-first with title fallback. It returns the
// per-field confirmation text produced by the script ("Title updated. "
// and so on), empty when no fields were set. A failed lookup unwraps to
// ErrNotFound.
func (c *Client) UpdateTask(ctx context.Context, req UpdateTaskRequest) (string, error) {
	if strings.TrimSpace(req.TaskID) == "" {
		return "", &ThingsError{
			Op:  "updateTask",
			Err: &ValidationError{Field: "task_id", Reason: "must not be empty"},
		}
	}

	out, err := c.runner.Run(ctx, buildUpdateTaskScript(req))
	if err != nil {
		return "", &ThingsError{Op: "updateTask", Err: err}
	}
	if out == markerNotFound {
		return "", &ThingsError{Op: "updateTask", Err: ErrNotFound}
	}
	return out, nil
}
