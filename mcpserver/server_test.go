package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"kalibot/catalog"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistry([]catalog.Entry{
		{Category: "scanning", Tool: mcp.NewTool("nmap",
			mcp.WithDescription("scan"),
			mcp.WithString("target", mcp.Required()),
		)},
		{Category: "scanning", Install: "sudo apt install nikto", Tool: mcp.NewTool("nikto", mcp.WithDescription("web scan"))},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	reg.SetInstalled("nmap", true)
	return reg
}

func callRequest(tool string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	return req
}

func TestHandlerRunsInstalledTool(t *testing.T) {
	reg := testRegistry(t)
	var gotTool string
	var gotParams map[string]any
	s := New("kalibot", "test", reg, func(ctx context.Context, tool string, params map[string]any) (string, error) {
		gotTool = tool
		gotParams = params
		return "scan output", nil
	})

	res, err := s.handler("nmap")(context.Background(), callRequest("nmap", map[string]any{"target": "10.0.0.5"}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %+v", res)
	}
	if gotTool != "nmap" {
		t.Errorf("ran tool %q", gotTool)
	}
	if gotParams["target"] != "10.0.0.5" {
		t.Errorf("params = %v", gotParams)
	}
}

func TestHandlerRefusesUninstalledTool(t *testing.T) {
	reg := testRegistry(t)
	ran := false
	s := New("kalibot", "test", reg, func(ctx context.Context, tool string, params map[string]any) (string, error) {
		ran = true
		return "", nil
	})

	res, err := s.handler("nikto")(context.Background(), callRequest("nikto", nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result for uninstalled tool")
	}
	if ran {
		t.Error("executor ran for an uninstalled tool")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	reg := testRegistry(t)
	s := New("kalibot", "test", reg, func(ctx context.Context, tool string, params map[string]any) (string, error) {
		return "", errors.New("missing required parameter \"target\"")
	})

	res, err := s.handler("nmap")(context.Background(), callRequest("nmap", nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result")
	}
}
