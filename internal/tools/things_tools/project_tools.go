package things_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/things-mcp/internal/server"
	"github.com/teemow/things-mcp/internal/things"
	"github.com/teemow/things-mcp/internal/tools/common"
)

// registerProjectTools registers project and overview tools
func registerProjectTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List projects tool (read-only, always available)
	listProjectsTool := mcp.NewTool("list_projects",
		mcp.WithDescription("List projects in Things 3"),
		mcp.WithString("status",
			mcp.Description("Filter by status: open, completed, all (default: open)"),
		),
	)

	s.AddTool(listProjectsTool, common.InstrumentedToolHandlerWithOperation(
		"list_projects", "listProjects", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListProjects(ctx, request, sc)
		}))

	// Daily overview tool (read-only, always available)
	dailyOverviewTool := mcp.NewTool("get_daily_overview",
		mcp.WithDescription("Get a summary of today's tasks, upcoming tasks, and active projects"),
	)

	s.AddTool(dailyOverviewTool, common.InstrumentedToolHandlerWithOperation(
		"get_daily_overview", "dailyOverview", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDailyOverview(ctx, request, sc)
		}))

	// Register write tools only if not in read-only mode
	if !readOnly {
		addProjectTool := mcp.NewTool("add_project",
			mcp.WithDescription("Create a new project in Things 3"),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the project"),
			),
			mcp.WithString("notes",
				mcp.Description("Notes for the project"),
			),
			mcp.WithString("area",
				mcp.Description("Name of the area to add the project to"),
			),
			mcp.WithString("when",
				mcp.Description("When to schedule the project: someday or today (default: someday)"),
			),
		)

		s.AddTool(addProjectTool, common.InstrumentedToolHandlerWithOperation(
			"add_project", "addProject", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleAddProject(ctx, request, sc)
			}))
	}

	return nil
}

func handleListProjects(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	status := stringArg(args, "status", "open")

	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projects, err := client.ListProjects(ctx, status)
	if err != nil {
		return scriptFailure(ctx, sc, "listProjects", "Failed to list projects: %v", err), nil
	}

	if len(projects) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No %s projects found", status)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d %s projects:\n\n", len(projects), status)
	for _, project := range projects {
		fmt.Fprintf(&sb, "• %s\n", project.Title)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleAddProject(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := things.AddProjectRequest{
		Title: title,
		Notes: stringArg(args, "notes", ""),
		Area:  stringArg(args, "area", ""),
		When:  stringArg(args, "when", "someday"),
	}

	projectID, err := client.AddProject(ctx, req)
	if err != nil {
		return scriptFailure(ctx, sc, "addProject", "Failed to create project: %v", err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Project '%s' created successfully with ID: %s", title, projectID)), nil
}

func handleDailyOverview(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := getThingsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	overview, err := client.DailyOverview(ctx)
	if err != nil {
		return scriptFailure(ctx, sc, "dailyOverview", "Failed to get daily overview: %v", err), nil
	}

	return mcp.NewToolResultText(overview), nil
}
