// Package things_tools provides MCP tools for Things 3 task management.
//
// This package exposes Things 3 automation through the Model Context Protocol
// (MCP), allowing AI agents to manage tasks and projects. It wraps the things
// client package and provides the following tools:
//
//   - add_task: Add a new task with optional notes, due date, area, project, and tags
//   - list_tasks: List tasks from a built-in list (today, upcoming, anytime, someday, inbox, completed)
//   - complete_task: Mark a task as completed, looked up by ID or exact title
//   - search_tasks: Search task names and notes for a query string
//   - list_projects: List projects filtered by status
//   - add_project: Create a new project
//   - get_daily_overview: Summarize today's tasks, upcoming tasks, and active projects
//   - update_task: Update fields of an existing task
//
// Prerequisites:
// Things 3 must be installed and running on macOS. The tools drive the app
// through AppleScript automation via the osascript binary.
//
// Read-Only Mode:
// By default the server runs in read-only mode and only registers the listing
// and search tools. Start the server with --yolo to enable write tools
// (add_task, complete_task, update_task, add_project).
//
// Example MCP tool call:
//
//	{
//	  "tool": "add_task",
//	  "arguments": {
//	    "title": "Buy groceries",
//	    "due_date": "2025-06-01",
//	    "tags": "errands,home"
//	  }
//	}
package things_tools
