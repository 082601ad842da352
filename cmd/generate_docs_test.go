package cmd

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		expected string
	}{
		{
			name:     "add task",
			toolName: "add_task",
			expected: "Task Tools",
		},
		{
			name:     "list tasks",
			toolName: "list_tasks",
			expected: "Task Tools",
		},
		{
			name:     "search tasks",
			toolName: "search_tasks",
			expected: "Task Tools",
		},
		{
			name:     "complete task",
			toolName: "complete_task",
			expected: "Task Tools",
		},
		{
			name:     "update task",
			toolName: "update_task",
			expected: "Task Tools",
		},
		{
			name:     "add project",
			toolName: "add_project",
			expected: "Project Tools",
		},
		{
			name:     "list projects",
			toolName: "list_projects",
			expected: "Project Tools",
		},
		{
			name:     "daily overview",
			toolName: "get_daily_overview",
			expected: "Project Tools",
		},
		{
			name:     "unknown tool",
			toolName: "frobnicate",
			expected: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := getCategoryFromToolName(tt.toolName)
			if got != tt.expected {
				t.Errorf("getCategoryFromToolName(%q) = %q, want %q", tt.toolName, got, tt.expected)
			}
		})
	}
}

func TestGenerateToolMarkdown(t *testing.T) {
	tool := mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks from a specified list in Things"),
		mcp.WithString("list",
			mcp.Description("Which list to show"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return"),
		),
	)

	md := generateToolMarkdown(tool)

	if !strings.Contains(md, "### list_tasks") {
		t.Errorf("missing tool heading in:\n%s", md)
	}
	if !strings.Contains(md, "List tasks from a specified list in Things") {
		t.Errorf("missing description in:\n%s", md)
	}
	if !strings.Contains(md, "- `list` (optional): Which list to show") {
		t.Errorf("missing list argument in:\n%s", md)
	}
	if !strings.Contains(md, "- `limit` (optional): Maximum number of tasks to return") {
		t.Errorf("missing limit argument in:\n%s", md)
	}
}

func TestGenerateToolMarkdownRequired(t *testing.T) {
	tool := mcp.NewTool("add_task",
		mcp.WithDescription("Add a new task to Things"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title"),
		),
	)

	md := generateToolMarkdown(tool)

	if !strings.Contains(md, "- `title` (required): Task title") {
		t.Errorf("missing required argument in:\n%s", md)
	}
}

func TestContains(t *testing.T) {
	slice := []string{"title", "notes"}

	if !contains(slice, "title") {
		t.Error("contains(title) = false, want true")
	}
	if contains(slice, "due_date") {
		t.Error("contains(due_date) = true, want false")
	}
	if contains(nil, "anything") {
		t.Error("contains on nil slice = true, want false")
	}
}
