package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/dayplan/pkg/day"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerShowDayTool(srv, svc)
	registerSetSlotTool(srv, svc)
	registerAddTaskTool(srv, svc)
	registerSetTaskDoneTool(srv, svc)
	registerRemoveTaskTool(srv, svc)
	registerWeekTool(srv, svc)
	registerListDaysTool(srv, svc)
}

func dateArg() mcp.ToolOption {
	return mcp.WithString("date",
		mcp.Description("Day as YYYY-MM-DD, or today, tomorrow, yesterday. Defaults to today."),
	)
}

func listArg() mcp.ToolOption {
	return mcp.WithString("list",
		mcp.Required(),
		mcp.Description("Task list to change."),
		mcp.Enum("todo", "goal"),
	)
}

func indexArg() mcp.ToolOption {
	return mcp.WithNumber("index",
		mcp.Required(),
		mcp.Description("1-based position of the task, as listed by show_day."),
		mcp.Min(1),
	)
}

func registerShowDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"show_day",
		mcp.WithDescription("Show the schedule, todos and goals planned for a day."),
		dateArg(),
	)

	srv.AddTool(tool, handleShowDay(svc))
}

func registerSetSlotTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_slot",
		mcp.WithDescription("Replace the text of one schedule hour. Empty text clears the hour."),
		dateArg(),
		mcp.WithString("hour",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Hour between %s and %s, such as 9, 09:00 or 09H00.", day.Hours[0], day.Hours[len(day.Hours)-1])),
		),
		mcp.WithString("text",
			mcp.Description("What is planned for that hour."),
		),
	)

	srv.AddTool(tool, handleSetSlot(svc))
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Append a task to the todo or goal list of a day."),
		dateArg(),
		listArg(),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Task text."),
		),
		mcp.WithBoolean("done",
			mcp.Description("Create the task already checked."),
		),
	)

	srv.AddTool(tool, handleAddTask(svc))
}

func registerSetTaskDoneTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_task_done",
		mcp.WithDescription("Check or uncheck a task."),
		dateArg(),
		listArg(),
		indexArg(),
		mcp.WithBoolean("done",
			mcp.Description("New checkbox state, defaults to true."),
		),
	)

	srv.AddTool(tool, handleSetTaskDone(svc))
}

func registerRemoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_task",
		mcp.WithDescription("Delete a task. Later tasks move up one position."),
		dateArg(),
		listArg(),
		indexArg(),
	)

	srv.AddTool(tool, handleRemoveTask(svc))
}

func registerWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"week",
		mcp.WithDescription("Summarise the Monday to Sunday week containing a day."),
		dateArg(),
	)

	srv.AddTool(tool, handleWeek(svc))
}

func registerListDaysTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_days",
		mcp.WithDescription("List every day that has something stored."),
	)

	srv.AddTool(tool, handleListDays(svc))
}

func handleShowDay(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Day(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func handleSetSlot(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
			Hour string `json:"hour"`
			Text string `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.SetSlot(ctx, args.Date, args.Hour, args.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func handleAddTask(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
			List string `json:"list"`
			Text string `json:"text"`
			Done bool   `json:"done"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddTask(ctx, args.Date, args.List, args.Text, args.Done)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func handleSetTaskDone(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := request.RequireString("list")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SetTaskDone(ctx, request.GetString("date", ""), list, index, request.GetBool("done", true))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func handleRemoveTask(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := request.RequireString("list")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RemoveTask(ctx, request.GetString("date", ""), list, index)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func handleWeek(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days, err := svc.Week(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"days":  days,
			"count": len(days),
		})
	}
}

func handleListDays(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keys, err := svc.Days(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"days":  keys,
			"count": len(keys),
		})
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
