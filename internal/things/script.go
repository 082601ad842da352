package things

import (
	"fmt"
	"strings"
)

// listNames maps the list names accepted by the list_tasks tool to the
// Things list titles they address. Completed tasks live in the Logbook.
var listNames = map[string]string{
	"today":     "Today",
	"upcoming":  "Upcoming",
	"anytime":   "Anytime",
	"someday":   "Someday",
	"inbox":     "Inbox",
	"completed": "Logbook",
}

// DefaultList is used when the requested list name is not recognized.
const DefaultList = "today"

// Markers returned by lookup scripts. The scripts fully control their
// output, so these cannot collide with user data.
const (
	markerFoundByID    = "ok:id"
	markerFoundByTitle = "ok:title"
	markerNotFound     = "missing"
)

// escapeText renders s safe for embedding in a double-quoted AppleScript
// string literal. Backslashes are escaped before quotes so the escape
// characters themselves survive the round trip. Every user-controlled
// value must pass through here before reaching script text.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// quote returns s as a double-quoted AppleScript string literal.
func quote(s string) string {
	return `"` + escapeText(s) + `"`
}

// quotedList returns the elements as a comma-separated sequence of
// quoted AppleScript string literals, e.g. `"a", "b"`.
func quotedList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, quote(item))
	}
	return strings.Join(quoted, ", ")
}

// taskFields renders the delimiter-joined field expression for a full
// task record. Field order must match parseTasks.
func taskFields(variable string) string {
	parts := []string{"name", "id", "notes", "due date", "creation date", "status"}
	exprs := make([]string, 0, len(parts))
	for _, p := range parts {
		exprs = append(exprs, fmt.Sprintf("(%s of %s)", p, variable))
	}
	return strings.Join(exprs, ` & "`+fieldSeparator+`" & `)
}

// summaryFields renders the field expression for a search/project
// summary record: name, id, status. Field order must match
// parseTaskSummaries and parseProjects.
func summaryFields(variable string) string {
	return fmt.Sprintf(`(name of %s) & "%s" & (id of %s) & "%s" & (status of %s)`,
		variable, fieldSeparator, variable, fieldSeparator, variable)
}

// buildAddTaskScript renders the script creating a new to-do. Optional
// properties are emitted only when set; absent fields produce no clause.
func buildAddTaskScript(req AddTaskRequest) string {
	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\tset newToDo to make new to do with properties {name:" + quote(req.Title))
	if req.Notes != "" {
		b.WriteString(", notes:" + quote(req.Notes))
	}
	if req.DueDate != "" {
		b.WriteString(", due date:date(" + quote(req.DueDate) + ")")
	}
	if req.Area != "" {
		b.WriteString(", area:" + quote(req.Area))
	}
	if req.Project != "" {
		b.WriteString(", project:" + quote(req.Project))
	}
	b.WriteString("}\n")
	if len(req.Tags) > 0 {
		b.WriteString("\trepeat with tagName in {" + quotedList(req.Tags) + "}\n")
		b.WriteString("\t\tset tag of newToDo to tagName\n")
		b.WriteString("\tend repeat\n")
	}
	b.WriteString("\treturn id of newToDo\n")
	b.WriteString("end tell")
	return b.String()
}

// buildListTasksScript renders the script listing tasks from one of the
// built-in lists. The limit is enforced inside the repeat loop so Things
// stops traversing once enough records are collected.
func buildListTasksScript(list string, limit int) string {
	name, ok := listNames[strings.ToLower(list)]
	if !ok {
		name = listNames[DefaultList]
	}

	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\tset taskList to {}\n")
	b.WriteString(fmt.Sprintf("\tset todoList to to dos of list %s\n", quote(name)))
	b.WriteString("\trepeat with i from 1 to (count of todoList)\n")
	b.WriteString(fmt.Sprintf("\t\tif i > %d then exit repeat\n", limit))
	b.WriteString("\t\tset thisToDo to item i of todoList\n")
	b.WriteString(fmt.Sprintf("\t\tset end of taskList to %s\n", taskFields("thisToDo")))
	b.WriteString("\tend repeat\n")
	b.WriteString("\treturn taskList as string\n")
	b.WriteString("end tell")
	return b.String()
}

// buildCompleteTaskScript renders the script completing a task. The
// identifier is first resolved as a task ID, then as a title; the script
// reports the outcome through fixed markers instead of user-derived text.
func buildCompleteTaskScript(identifier string) string {
	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\ttry\n")
	b.WriteString("\t\tset targetToDo to to do id " + quote(identifier) + "\n")
	b.WriteString("\t\tset status of targetToDo to completed\n")
	b.WriteString("\t\treturn " + quote(markerFoundByID) + "\n")
	b.WriteString("\ton error\n")
	b.WriteString("\t\ttry\n")
	b.WriteString("\t\t\tset targetToDo to to do " + quote(identifier) + "\n")
	b.WriteString("\t\t\tset status of targetToDo to completed\n")
	b.WriteString("\t\t\treturn " + quote(markerFoundByTitle) + "\n")
	b.WriteString("\t\ton error\n")
	b.WriteString("\t\t\treturn " + quote(markerNotFound) + "\n")
	b.WriteString("\t\tend try\n")
	b.WriteString("\tend try\n")
	b.WriteString("end tell")
	return b.String()
}

// buildSearchTasksScript renders the script searching task names and
// notes for the query. The repeat exits as soon as limit results are
// collected rather than scanning all to-dos.
func buildSearchTasksScript(query string, limit int) string {
	q := quote(query)

	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\tset searchResults to {}\n")
	b.WriteString("\tset allToDos to to dos\n")
	b.WriteString("\trepeat with thisToDo in allToDos\n")
	b.WriteString(fmt.Sprintf("\t\tif (name of thisToDo) contains %s or (notes of thisToDo) contains %s then\n", q, q))
	b.WriteString(fmt.Sprintf("\t\t\tset end of searchResults to %s\n", summaryFields("thisToDo")))
	b.WriteString(fmt.Sprintf("\t\t\tif (count of searchResults) is greater than or equal to %d then exit repeat\n", limit))
	b.WriteString("\t\tend if\n")
	b.WriteString("\tend repeat\n")
	b.WriteString("\treturn searchResults as string\n")
	b.WriteString("end tell")
	return b.String()
}

// buildListProjectsScript renders the script listing projects. The
// status filter is applied natively by Things; any status other than
// open or completed lists everything.
func buildListProjectsScript(status string) string {
	filter := ""
	switch status {
	case "open":
		filter = " whose status is open"
	case "completed":
		filter = " whose status is completed"
	}

	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\tset projectList to {}\n")
	b.WriteString(fmt.Sprintf("\tset allProjects to projects%s\n", filter))
	b.WriteString("\trepeat with thisProject in allProjects\n")
	b.WriteString(fmt.Sprintf("\t\tset end of projectList to %s\n", summaryFields("thisProject")))
	b.WriteString("\tend repeat\n")
	b.WriteString("\treturn projectList as string\n")
	b.WriteString("end tell")
	return b.String()
}

// buildAddProjectScript renders the script creating a new project.
func buildAddProjectScript(req AddProjectRequest) string {
	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\tset newProject to make new project with properties {name:" + quote(req.Title))
	if req.Notes != "" {
		b.WriteString(", notes:" + quote(req.Notes))
	}
	if req.Area != "" {
		b.WriteString(", area:" + quote(req.Area))
	}
	b.WriteString("}\n")
	if strings.EqualFold(req.When, "today") {
		b.WriteString("\tset start date of newProject to current date\n")
	}
	b.WriteString("\treturn id of newProject\n")
	b.WriteString("end tell")
	return b.String()
}

// buildDailyOverviewScript renders the script assembling the daily
// overview text: today's tasks, upcoming tasks and active projects.
func buildDailyOverviewScript() string {
	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\tset overview to \"\"\n")
	b.WriteString("\tset todayTasks to to dos of list \"Today\"\n")
	b.WriteString("\tset overview to overview & \"TODAY (\" & (count of todayTasks) & \" tasks):\" & return\n")
	b.WriteString("\trepeat with thisToDo in todayTasks\n")
	b.WriteString("\t\tset overview to overview & \"- \" & (name of thisToDo)\n")
	b.WriteString("\t\tif (due date of thisToDo) is not missing value then\n")
	b.WriteString("\t\t\tset overview to overview & \" (Due: \" & (due date of thisToDo) & \")\"\n")
	b.WriteString("\t\tend if\n")
	b.WriteString("\t\tset overview to overview & return\n")
	b.WriteString("\tend repeat\n")
	b.WriteString("\tset upcomingTasks to to dos of list \"Upcoming\"\n")
	b.WriteString("\tset overview to overview & return & \"UPCOMING (\" & (count of upcomingTasks) & \" tasks):\" & return\n")
	b.WriteString("\trepeat with thisToDo in upcomingTasks\n")
	b.WriteString("\t\tset overview to overview & \"- \" & (name of thisToDo)\n")
	b.WriteString("\t\tif (due date of thisToDo) is not missing value then\n")
	b.WriteString("\t\t\tset overview to overview & \" (Due: \" & (due date of thisToDo) & \")\"\n")
	b.WriteString("\t\tend if\n")
	b.WriteString("\t\tset overview to overview & return\n")
	b.WriteString("\tend repeat\n")
	b.WriteString("\tset openProjects to projects whose status is open\n")
	b.WriteString("\tset overview to overview & return & \"ACTIVE PROJECTS (\" & (count of openProjects) & \"):\" & return\n")
	b.WriteString("\trepeat with thisProject in openProjects\n")
	b.WriteString("\t\tset projectTasks to to dos of thisProject whose status is open\n")
	b.WriteString("\t\tset overview to overview & \"- \" & (name of thisProject) & \" (\" & (count of projectTasks) & \" tasks)\" & return\n")
	b.WriteString("\tend repeat\n")
	b.WriteString("\treturn overview\n")
	b.WriteString("end tell")
	return b.String()
}

// buildUpdateTaskScript renders the script updating a task in place.
// The identifier is resolved ID-first with title fallback; only set
// fields produce update statements. The script reports which fields it
// touched so the caller can surface a per-field confirmation.
func buildUpdateTaskScript(req UpdateTaskRequest) string {
	var b strings.Builder
	b.WriteString("tell application \"Things3\"\n")
	b.WriteString("\ttry\n")
	b.WriteString("\t\tset targetToDo to to do id " + quote(req.TaskID) + "\n")
	b.WriteString("\ton error\n")
	b.WriteString("\t\ttry\n")
	b.WriteString("\t\t\tset targetToDo to to do " + quote(req.TaskID) + "\n")
	b.WriteString("\t\ton error\n")
	b.WriteString("\t\t\treturn " + quote(markerNotFound) + "\n")
	b.WriteString("\t\tend try\n")
	b.WriteString("\tend try\n")
	b.WriteString("\tset updateResult to \"\"\n")
	if req.Title != "" {
		b.WriteString("\tset name of targetToDo to " + quote(req.Title) + "\n")
		b.WriteString("\tset updateResult to updateResult & \"Title updated. \"\n")
	}
	if req.Notes != "" {
		b.WriteString("\tset notes of targetToDo to " + quote(req.Notes) + "\n")
		b.WriteString("\tset updateResult to updateResult & \"Notes updated. \"\n")
	}
	if req.DueDate != "" {
		b.WriteString("\tset due date of targetToDo to date(" + quote(req.DueDate) + ")\n")
		b.WriteString("\tset updateResult to updateResult & \"Due date updated. \"\n")
	}
	if len(req.Tags) > 0 {
		b.WriteString("\trepeat with tagName in {" + quotedList(req.Tags) + "}\n")
		b.WriteString("\t\tset tag of targetToDo to tagName\n")
		b.WriteString("\tend repeat\n")
		b.WriteString("\tset updateResult to updateResult & \"Tags updated. \"\n")
	}
	b.WriteString("\treturn updateResult\n")
	b.WriteString("end tell")
	return b.String()
}
