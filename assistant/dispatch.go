package assistant

import (
	"context"
	"fmt"

	"kalibot/catalog"
	"kalibot/config"
	"kalibot/model"
)

// Executor runs one validated tool invocation.
type Executor interface {
	Execute(ctx context.Context, tool string, params map[string]any) (model.ExecutionResult, error)
}

// RunRecorder persists finished runs. Recording failures are logged, never
// surfaced to the user.
type RunRecorder interface {
	Record(ctx context.Context, userID int64, tool string, res model.ExecutionResult) error
}

// Resolution is the outcome of dispatching one routed response: the response
// to render, plus the execution result when a tool actually ran.
type Resolution struct {
	Response model.RoutedResponse
	Result   *model.ExecutionResult
}

// Dispatcher resolves routed responses. Only the tool tag has side effects;
// every other tag passes through for rendering.
type Dispatcher struct {
	Catalog *catalog.Registry
	Exec    Executor
	Runs    RunRecorder
}

// Dispatch validates and, for tool responses, executes the routing decision.
// The availability check happens before any side effect: a tool call naming
// an absent tool is substituted with a ToolNotInstalled response and nothing
// runs.
func (d *Dispatcher) Dispatch(ctx context.Context, userID int64, routed model.RoutedResponse) Resolution {
	if routed.Kind != model.KindTool {
		return Resolution{Response: routed}
	}

	entry, ok := d.Catalog.Get(routed.ToolName)
	if !ok {
		return Resolution{Response: model.ErrorResponse(
			fmt.Sprintf("unknown tool %q", routed.ToolName),
			"the assistant suggested a tool this system does not know; rephrase the request",
		)}
	}
	if !entry.Installed {
		return Resolution{Response: model.ToolNotInstalled(
			routed.ToolName,
			d.Catalog.InstallCommand(routed.ToolName),
			fmt.Sprintf("%s is not installed on this system", routed.ToolName),
		)}
	}

	res, err := d.Exec.Execute(ctx, routed.ToolName, routed.Parameters)
	if err != nil {
		return Resolution{
			Response: model.ErrorResponse(err.Error(), "adjust the parameters and try again"),
			Result:   &res,
		}
	}

	if d.Runs != nil {
		if recErr := d.Runs.Record(ctx, userID, routed.ToolName, res); recErr != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("run recording failed: %v", recErr)
			}
		}
	}

	return Resolution{Response: routed, Result: &res}
}
