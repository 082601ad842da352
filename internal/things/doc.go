// Package things provides a client for the Things 3 task manager via
// AppleScript automation.
//
// This package offers Things task management functionality including:
//   - Creating tasks and projects with notes, due dates, areas and tags
//   - Listing tasks from the built-in lists (Today, Upcoming, Inbox, ...)
//   - Completing and updating tasks by ID or title
//   - Searching task names and notes
//   - A daily overview of today's and upcoming work
//
// The client wraps the macOS osascript command-line tool and requires
// Things 3 to be installed. Every operation renders an AppleScript,
// executes it synchronously with a bounded timeout and parses the
// textual reply back into typed records.
//
// Things reports listings as a single flat string: records separated by
// commas, fields by the "|||" separator, with "missing value" standing
// in for absent properties. The parser in this package tolerates
// malformed records by dropping them and maps the sentinel to empty
// values; an empty reply is an empty result set, never an error.
//
// All user-provided text is escaped before it is embedded in script
// source. Failure to escape would let a quote character in a task title
// terminate the enclosing string literal and inject script statements,
// so escaping is centralized in a single function the builders must use.
//
// Example usage:
//
//	client, err := things.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := client.AddTask(ctx, things.AddTaskRequest{
//	    Title:   "Buy milk",
//	    DueDate: "2025-01-01",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tasks, err := client.ListTasks(ctx, "today", 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range tasks {
//	    fmt.Println(t.Title, t.Status)
//	}
package things
