package things

import (
	"errors"
	"fmt"
)

// Status represents the state of a task or project as reported by Things.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Default result limits for listing operations.
const (
	DefaultTaskLimit   = 20
	DefaultSearchLimit = 10
)

// Task represents a Things 3 to-do.
//
// Tasks are reconstructed fresh from Things on every call; the package
// holds no cache. The ID is assigned by Things and is immutable.
type Task struct {
	// ID is the opaque identifier assigned by Things
	ID string `json:"id"`

	// Title is the task name (never empty for well-formed tasks)
	Title string `json:"title"`

	// Notes is the free-form notes text, empty if unset
	Notes string `json:"notes,omitempty"`

	// DueDate is the due date as reported by Things, empty if unset
	DueDate string `json:"due_date,omitempty"`

	// Area is the name of the containing area, empty if unset
	Area string `json:"area,omitempty"`

	// Project is the name of the containing project, empty if unset
	Project string `json:"project,omitempty"`

	// Tags holds the task's tag names in Things order
	Tags []string `json:"tags,omitempty"`

	// Status is open, completed or canceled
	Status Status `json:"status"`

	// CreationDate is the creation timestamp as reported by Things
	CreationDate string `json:"creation_date,omitempty"`
}

// Project represents a Things 3 project.
type Project struct {
	// ID is the opaque identifier assigned by Things
	ID string `json:"id"`

	// Title is the project name
	Title string `json:"title"`

	// Notes is the free-form notes text, empty if unset
	Notes string `json:"notes,omitempty"`

	// Area is the name of the containing area, empty if unset
	Area string `json:"area,omitempty"`

	// Status is open, completed or canceled
	Status Status `json:"status"`

	// Tasks holds the project's tasks when populated; listing projects
	// does not fetch them
	Tasks []Task `json:"tasks,omitempty"`
}

// AddTaskRequest describes a task to create. Title is required; every
// other field is optional and omitted from the generated script when
// empty.
type AddTaskRequest struct {
	Title   string
	Notes   string
	DueDate string
	Area    string
	Project string
	Tags    []string
}

// AddProjectRequest describes a project to create. Title is required.
// When is "someday" (default) or "today"; "today" sets the start date.
type AddProjectRequest struct {
	Title string
	Notes string
	Area  string
	When  string
}

// UpdateTaskRequest describes an in-place task update. TaskID is
// required and may be either a task ID or a title. Only set fields are
// written to Things.
type UpdateTaskRequest struct {
	TaskID  string
	Title   string
	Notes   string
	DueDate string
	Tags    []string
}

// FoundBy reports how a task identifier was resolved.
type FoundBy string

const (
	FoundByID    FoundBy = "id"
	FoundByTitle FoundBy = "title"
)

// Sentinel errors for recognized, non-exceptional outcomes.
var (
	// ErrNotFound is returned when a task can be resolved neither by ID
	// nor by title.
	ErrNotFound = errors.New("task not found")

	// ErrTimeout is returned when osascript does not finish within the
	// configured bound.
	ErrTimeout = errors.New("applescript execution timed out")
)

// ThingsError wraps a failure from a Things operation with the
// operation name.
type ThingsError struct {
	// Op is the operation that failed (e.g., "addTask", "listTasks")
	Op string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *ThingsError) Error() string {
	return fmt.Sprintf("things %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *ThingsError) Unwrap() error {
	return e.Err
}

// ValidationError reports a missing or invalid argument. It is detected
// before any script is built, so invalid requests never reach Things.
type ValidationError struct {
	// Field is the argument that failed validation
	Field string

	// Reason describes why the value was rejected
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// ExecError reports a non-zero osascript exit, carrying the captured
// standard error text for diagnostics.
type ExecError struct {
	// Stderr is the trimmed standard error output from osascript
	Stderr string

	// Err is the underlying process error
	Err error
}

// Error implements the error interface
func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("applescript failed: %v (stderr: %s)", e.Err, e.Stderr)
	}
	return fmt.Sprintf("applescript failed: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExecError) Unwrap() error {
	return e.Err
}
