package things

import "strings"

// Delimiters and sentinel used by the listing scripts. AppleScript
// flattens a list of strings with the default text item delimiter (","),
// so fields inside each record use a multi-character separator that is
// unlikely to appear in user text.
const (
	fieldSeparator  = "|||"
	recordSeparator = ","

	// missingValue is AppleScript's textual representation of an absent
	// property. It is mapped to the empty string, never kept literally.
	missingValue = "missing value"
)

// Minimum field counts per record shape. Each listing script emits a
// fixed field order; records with fewer fields are dropped as malformed
// rather than failing the whole response.
const (
	taskFieldCount    = 6
	summaryFieldCount = 3
)

// splitRecords splits raw osascript output into per-record field
// slices. Records lacking the field separator or carrying fewer than
// minFields fields are dropped. Fields are whitespace-trimmed and the
// "missing value" sentinel is mapped to the empty string. Empty input
// yields zero records, not an error.
func splitRecords(raw string, minFields int) [][]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var records [][]string
	for _, line := range strings.Split(raw, recordSeparator) {
		if !strings.Contains(line, fieldSeparator) {
			continue
		}
		fields := strings.Split(line, fieldSeparator)
		if len(fields) < minFields {
			continue
		}
		for i, field := range fields {
			field = strings.TrimSpace(field)
			if field == missingValue {
				field = ""
			}
			fields[i] = field
		}
		records = append(records, fields)
	}
	return records
}

// parseStatus maps a Things status string to a Status value. Unknown
// values default to open rather than failing the record.
func parseStatus(s string) Status {
	switch s {
	case string(StatusCompleted):
		return StatusCompleted
	case string(StatusCanceled), "cancelled":
		return StatusCanceled
	default:
		return StatusOpen
	}
}

// parseTasks reconstructs tasks from a full task listing. Field order
// matches buildListTasksScript: name, id, notes, due date, creation
// date, status.
func parseTasks(raw string) []Task {
	records := splitRecords(raw, taskFieldCount)
	tasks := make([]Task, 0, len(records))
	for _, f := range records {
		tasks = append(tasks, Task{
			Title:        f[0],
			ID:           f[1],
			Notes:        f[2],
			DueDate:      f[3],
			CreationDate: f[4],
			Status:       parseStatus(f[5]),
		})
	}
	return tasks
}

// parseTaskSummaries reconstructs tasks from a search result. Field
// order matches buildSearchTasksScript: name, id, status.
func parseTaskSummaries(raw string) []Task {
	records := splitRecords(raw, summaryFieldCount)
	tasks := make([]Task, 0, len(records))
	for _, f := range records {
		tasks = append(tasks, Task{
			Title:  f[0],
			ID:     f[1],
			Status: parseStatus(f[2]),
		})
	}
	return tasks
}

// parseProjects reconstructs projects from a project listing. Field
// order matches buildListProjectsScript: name, id, status.
func parseProjects(raw string) []Project {
	records := splitRecords(raw, summaryFieldCount)
	projects := make([]Project, 0, len(records))
	for _, f := range records {
		projects = append(projects, Project{
			Title:  f[0],
			ID:     f[1],
			Status: parseStatus(f[2]),
		})
	}
	return projects
}
