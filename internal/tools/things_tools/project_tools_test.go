package things_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleListProjects(t *testing.T) {
	runner := &fakeRunner{out: "Renovation|||THG-P1|||open,Garden|||THG-P2|||open"}
	sc := newTestContext(t, runner)

	result, err := handleListProjects(context.Background(), callRequest(map[string]interface{}{}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.True(t, strings.HasPrefix(text, "Found 2 open projects:"), text)
	assert.Contains(t, text, "• Renovation\n")
	assert.Contains(t, text, "• Garden\n")
}

func TestHandleListProjectsEmpty(t *testing.T) {
	sc := newTestContext(t, &fakeRunner{out: ""})

	result, err := handleListProjects(context.Background(), callRequest(map[string]interface{}{
		"status": "completed",
	}), sc)
	require.NoError(t, err)
	assert.Equal(t, "No completed projects found", resultText(t, result))
}

func TestHandleAddProject(t *testing.T) {
	runner := &fakeRunner{out: "THG-P9"}
	sc := newTestContext(t, runner)

	result, err := handleAddProject(context.Background(), callRequest(map[string]interface{}{
		"title": "Renovation",
		"area":  "Home",
		"when":  "today",
	}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "Project 'Renovation' created successfully with ID: THG-P9", resultText(t, result))
	assert.Contains(t, runner.script, `name:"Renovation"`)
}

func TestHandleAddProjectMissingTitle(t *testing.T) {
	sc := newTestContext(t, &fakeRunner{})

	result, err := handleAddProject(context.Background(), callRequest(map[string]interface{}{}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "title is required")
}

func TestHandleDailyOverview(t *testing.T) {
	overview := "Daily Overview\n\nToday's Tasks (2):\n• Buy milk\n• Walk dog\n"
	sc := newTestContext(t, &fakeRunner{out: overview})

	result, err := handleDailyOverview(context.Background(), callRequest(map[string]interface{}{}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, overview, resultText(t, result))
}
