package things_tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/things-mcp/internal/server"
	"github.com/teemow/things-mcp/internal/things"
	"github.com/teemow/things-mcp/internal/tools/common"
)

// registerTaskTools registers task management tools
func registerTaskTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List tasks tool (read-only, always available)
	listTasksTool := mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks from a specific list in Things 3"),
		mcp.WithString("list",
			mcp.Description("Which list to show: today, upcoming, anytime, someday, inbox, completed (default: today)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default: 20)"),
		),
	)

	s.AddTool(listTasksTool, common.InstrumentedToolHandlerWithOperation(
		"list_tasks", "listTasks", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListTasks(ctx, request, sc)
		}))

	// Search tasks tool (read-only, always available)
	searchTasksTool := mcp.NewTool("search_tasks",
		mcp.WithDescription("Search for tasks by name or notes content"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for in task names and notes"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 10)"),
		),
	)

	s.AddTool(searchTasksTool, common.InstrumentedToolHandlerWithOperation(
		"search_tasks", "searchTasks", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchTasks(ctx, request, sc)
		}))

	// Register write tools only if not in read-only mode
	if !readOnly {
		addTaskTool := mcp.NewTool("add_task",
			mcp.WithDescription("Add a new task to Things 3"),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the task"),
			),
			mcp.WithString("notes",
				mcp.Description("Notes for the task"),
			),
			mcp.WithString("due_date",
				mcp.Description("Due date in YYYY-MM-DD format"),
			),
			mcp.WithString("area",
				mcp.Description("Name of the area to add the task to"),
			),
			mcp.WithString("project",
				mcp.Description("Name of the project to add the task to"),
			),
			mcp.WithString("tags",
				mcp.Description("Comma-separated list of tag names to apply"),
			),
		)

		s.AddTool(addTaskTool, common.InstrumentedToolHandlerWithOperation(
			"add_task", "addTask", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleAddTask(ctx, request, sc)
			}))

		completeTaskTool := mcp.NewTool("complete_task",
			mcp.WithDescription("Mark a task as completed. The task is looked up by ID first, then by exact title."),
			mcp.WithString("task_id",
				mcp.Required(),
				mcp.Description("The ID or exact title of the task to complete"),
			),
		)

		s.AddTool(completeTaskTool, common.InstrumentedToolHandlerWithOperation(
			"complete_task", "completeTask", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCompleteTask(ctx, request, sc)
			}))

		updateTaskTool := mcp.NewTool("update_task",
			mcp.WithDescription("Update fields of an existing task. Only the provided fields are changed."),
			mcp.WithString("task_id",
				mcp.Required(),
				mcp.Description("The ID or exact title of the task to update"),
			),
			mcp.WithString("title",
				mcp.Description("New title for the task"),
			),
			mcp.WithString("notes",
				mcp.Description("New notes for the task"),
			),
			mcp.WithString("due_date",
				mcp.Description("New due date in YYYY-MM-DD format"),
			),
			mcp.WithString("tags",
				mcp.Description("Comma-separated list of tag names to apply"),
			),
		)

		s.AddTool(updateTaskTool, common.InstrumentedToolHandlerWithOperation(
			"update_task", "updateTask", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateTask(ctx, request, sc)
			}))
	}

	return nil
}

func handleAddTask(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := things.AddTaskRequest{
		Title:   title,
		Notes:   stringArg(args, "notes", ""),
		DueDate: stringArg(args, "due_date", ""),
		Area:    stringArg(args, "area", ""),
		Project: stringArg(args, "project", ""),
		Tags:    parseTags(stringArg(args, "tags", "")),
	}

	taskID, err := client.AddTask(ctx, req)
	if err != nil {
		return scriptFailure(ctx, sc, "addTask", "Failed to add task: %v", err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Task '%s' added successfully with ID: %s", title, taskID)), nil
}

func handleListTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	list := stringArg(args, "list", things.DefaultList)
	limit := intArg(args, "limit", things.DefaultTaskLimit)

	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tasks, err := client.ListTasks(ctx, list, limit)
	if err != nil {
		return scriptFailure(ctx, sc, "listTasks", "Failed to list tasks: %v", err), nil
	}

	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordListRead(ctx, list)
	}

	if len(tasks) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No tasks found in %s list", list)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d tasks in %s:\n\n", len(tasks), list)
	for _, task := range tasks {
		sb.WriteString("• " + task.Title)
		if task.DueDate != "" {
			fmt.Fprintf(&sb, " (Due: %s)", task.DueDate)
		}
		if task.Notes != "" {
			fmt.Fprintf(&sb, "\n  Notes: %s", task.Notes)
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleCompleteTask(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	taskID, ok := args["task_id"].(string)
	if !ok || taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}

	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	foundBy, err := client.CompleteTask(ctx, taskID)
	if err != nil {
		// A missing task is a recognized outcome, not a scripting failure.
		if errors.Is(err, things.ErrNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("Task not found: %s", taskID)), nil
		}
		return scriptFailure(ctx, sc, "completeTask", "Failed to complete task: %v", err), nil
	}

	switch foundBy {
	case things.FoundByTitle:
		return mcp.NewToolResultText("Task completed successfully (found by title)"), nil
	default:
		return mcp.NewToolResultText("Task completed successfully (found by ID)"), nil
	}
}

func handleSearchTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	limit := intArg(args, "limit", things.DefaultSearchLimit)

	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tasks, err := client.SearchTasks(ctx, query, limit)
	if err != nil {
		return scriptFailure(ctx, sc, "searchTasks", "Failed to search tasks: %v", err), nil
	}

	if len(tasks) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No tasks found matching '%s'", query)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d tasks matching '%s':\n\n", len(tasks), query)
	for _, task := range tasks {
		fmt.Fprintf(&sb, "• %s (%s)\n", task.Title, task.Status)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleUpdateTask(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	taskID, ok := args["task_id"].(string)
	if !ok || taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}

	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := things.UpdateTaskRequest{
		TaskID:  taskID,
		Title:   stringArg(args, "title", ""),
		Notes:   stringArg(args, "notes", ""),
		DueDate: stringArg(args, "due_date", ""),
		Tags:    parseTags(stringArg(args, "tags", "")),
	}

	result, err := client.UpdateTask(ctx, req)
	if err != nil {
		if errors.Is(err, things.ErrNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("Task not found: %s", taskID)), nil
		}
		return scriptFailure(ctx, sc, "updateTask", "Failed to update task: %v", err), nil
	}

	if result == "" {
		result = "Task updated successfully"
	}
	return mcp.NewToolResultText(result), nil
}
