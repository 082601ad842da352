package things

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records the last script and returns a canned reply.
type fakeRunner struct {
	script string
	out    string
	err    error
	calls  int
}

func (f *fakeRunner) Run(_ context.Context, script string) (string, error) {
	f.calls++
	f.script = script
	return f.out, f.err
}

func TestAddTask(t *testing.T) {
	runner := &fakeRunner{out: "THG-NEW-1"}
	client := NewClientWithRunner(runner)

	id, err := client.AddTask(context.Background(), AddTaskRequest{
		Title:   "Buy milk",
		DueDate: "2025-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "THG-NEW-1", id)
	assert.Contains(t, runner.script, `name:"Buy milk"`)
	assert.Contains(t, runner.script, `due date:date("2025-01-01")`)
	assert.NotContains(t, runner.script, "notes:")
}

func TestAddTaskRequiresTitle(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClientWithRunner(runner)

	_, err := client.AddTask(context.Background(), AddTaskRequest{Title: "   "})
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	// Validation failures must never reach Things.
	assert.Zero(t, runner.calls)
}

func TestAddTaskEmptyReply(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{out: ""})

	_, err := client.AddTask(context.Background(), AddTaskRequest{Title: "Buy milk"})
	assert.Error(t, err)
}

func TestListTasksParsesReply(t *testing.T) {
	runner := &fakeRunner{
		out: "Buy milk|||THG-1|||missing value|||missing value|||missing value|||open," +
			"Walk dog|||THG-2|||daily|||missing value|||missing value|||open",
	}
	client := NewClientWithRunner(runner)

	tasks, err := client.ListTasks(context.Background(), "today", 2)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "THG-1", tasks[0].ID)
	assert.Contains(t, runner.script, "if i > 2 then exit repeat")
}

func TestListTasksDefaultLimit(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClientWithRunner(runner)

	_, err := client.ListTasks(context.Background(), "inbox", 0)
	require.NoError(t, err)
	assert.Contains(t, runner.script, "if i > 20 then exit repeat")
}

func TestListTasksEmptyReply(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{out: ""})

	tasks, err := client.ListTasks(context.Background(), "today", 5)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCompleteTask(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		wantFoundBy FoundBy
		wantErr     error
	}{
		{name: "found by ID", reply: "ok:id", wantFoundBy: FoundByID},
		{name: "found by title", reply: "ok:title", wantFoundBy: FoundByTitle},
		{name: "not found", reply: "missing", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClientWithRunner(&fakeRunner{out: tt.reply})

			foundBy, err := client.CompleteTask(context.Background(), "THG-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFoundBy, foundBy)
		})
	}
}

func TestCompleteTaskUnexpectedReply(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{out: "something odd"})

	_, err := client.CompleteTask(context.Background(), "THG-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCompleteTaskRequiresIdentifier(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClientWithRunner(runner)

	_, err := client.CompleteTask(context.Background(), "")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, runner.calls)
}

func TestSearchTasks(t *testing.T) {
	runner := &fakeRunner{out: "Buy milk|||THG-1|||open"}
	client := NewClientWithRunner(runner)

	tasks, err := client.SearchTasks(context.Background(), "milk", 0)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	// Default limit applies when none is given.
	assert.Contains(t, runner.script, "is greater than or equal to 10")
}

func TestSearchTasksRequiresQuery(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{})

	_, err := client.SearchTasks(context.Background(), "  ", 5)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestListProjects(t *testing.T) {
	runner := &fakeRunner{out: "Renovation|||PRJ-1|||open"}
	client := NewClientWithRunner(runner)

	projects, err := client.ListProjects(context.Background(), "open")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Contains(t, runner.script, "whose status is open")
}

func TestAddProject(t *testing.T) {
	runner := &fakeRunner{out: "PRJ-NEW-1"}
	client := NewClientWithRunner(runner)

	id, err := client.AddProject(context.Background(), AddProjectRequest{Title: "Renovation", When: "today"})
	require.NoError(t, err)
	assert.Equal(t, "PRJ-NEW-1", id)
	assert.Contains(t, runner.script, "set start date of newProject to current date")
}

func TestDailyOverview(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{out: "TODAY (2 tasks):\n- Buy milk\n"})

	overview, err := client.DailyOverview(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(overview, "TODAY"))
}

func TestUpdateTask(t *testing.T) {
	runner := &fakeRunner{out: "Title updated. Notes updated. "}
	client := NewClientWithRunner(runner)

	result, err := client.UpdateTask(context.Background(), UpdateTaskRequest{
		TaskID: "THG-1",
		Title:  "New title",
		Notes:  "new notes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Title updated. Notes updated. ", result)
}

func TestUpdateTaskNotFound(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{out: "missing"})

	_, err := client.UpdateTask(context.Background(), UpdateTaskRequest{TaskID: "nope", Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientWrapsRunnerErrors(t *testing.T) {
	execErr := &ExecError{Stderr: "Things3 got an error", Err: errors.New("exit status 1")}
	client := NewClientWithRunner(&fakeRunner{err: execErr})

	_, err := client.ListTasks(context.Background(), "today", 5)
	require.Error(t, err)

	var terr *ThingsError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "listTasks", terr.Op)

	var eerr *ExecError
	assert.ErrorAs(t, err, &eerr)
	assert.Equal(t, "Things3 got an error", eerr.Stderr)
}

func TestClientWrapsTimeout(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{err: ErrTimeout})

	_, err := client.DailyOverview(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}
