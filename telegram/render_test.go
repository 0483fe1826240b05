package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"kalibot/assistant"
	"kalibot/catalog"
	"kalibot/model"
)

func TestRenderResolutionConversation(t *testing.T) {
	msgs := renderResolution(assistant.Resolution{Response: model.Conversation("hello")})
	if len(msgs) != 1 || msgs[0] != "hello" {
		t.Errorf("msgs = %v", msgs)
	}
}

func TestRenderResolutionQuestion(t *testing.T) {
	msgs := renderResolution(assistant.Resolution{
		Response: model.Question("which target?", []string{"10.0.0.5", "example.com"}),
	})
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	for _, want := range []string{"which target?", "10.0.0.5", "example.com"} {
		if !strings.Contains(msgs[0], want) {
			t.Errorf("message missing %q: %s", want, msgs[0])
		}
	}
}

func TestRenderResolutionNotInstalled(t *testing.T) {
	msgs := renderResolution(assistant.Resolution{
		Response: model.ToolNotInstalled("nikto", "sudo apt install nikto", "nikto is not installed"),
	})
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	if !strings.Contains(msgs[0], "sudo apt install nikto") {
		t.Errorf("install command missing: %s", msgs[0])
	}
}

func TestRenderResolutionError(t *testing.T) {
	msgs := renderResolution(assistant.Resolution{
		Response: model.ErrorResponse("no target", "name a host"),
	})
	if !strings.Contains(msgs[0], "no target") || !strings.Contains(msgs[0], "name a host") {
		t.Errorf("msgs = %v", msgs)
	}
}

func TestRenderResultChunksLongOutput(t *testing.T) {
	long := strings.Repeat("x", 9000)
	res := model.ExecutionResult{
		Success:  true,
		Command:  "nmap -p 1-1000 10.0.0.5",
		Stdout:   long,
		Duration: time.Second,
	}
	msgs := renderResolution(assistant.Resolution{
		Response: model.ToolCall("nmap", nil, "port scan"),
		Result:   &res,
	})

	// Header plus three output chunks.
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	if !strings.Contains(msgs[0], "nmap") || !strings.Contains(msgs[0], res.Command) {
		t.Errorf("header = %q", msgs[0])
	}
	var rebuilt strings.Builder
	for _, m := range msgs[1:] {
		body := strings.TrimSuffix(strings.TrimPrefix(m, "```\n"), "\n```")
		rebuilt.WriteString(body)
	}
	if rebuilt.String() != long {
		t.Error("chunked output does not reassemble to the original")
	}
}

func TestRenderResultFallsBackToStderr(t *testing.T) {
	res := model.ExecutionResult{
		Success:  true,
		Command:  "nikto -h http://x",
		Stderr:   "0 items found",
		ExitCode: 1,
	}
	msgs := renderResolution(assistant.Resolution{
		Response: model.ToolCall("nikto", nil, ""),
		Result:   &res,
	})
	joined := strings.Join(msgs, "\n")
	if !strings.Contains(joined, "0 items found") {
		t.Errorf("stderr not rendered: %s", joined)
	}
	if !strings.Contains(joined, "exit code 1") {
		t.Errorf("exit code not rendered: %s", joined)
	}
}

func TestRenderToolListMarksInstallState(t *testing.T) {
	reg, err := catalog.NewRegistry([]catalog.Entry{
		{Category: "scanning", Tool: mcp.NewTool("nmap", mcp.WithDescription("Port scanner."))},
		{Category: "scanning", Tool: mcp.NewTool("nikto", mcp.WithDescription("Web scanner."))},
	})
	if err != nil {
		t.Fatal(err)
	}
	reg.SetInstalled("nmap", true)

	list := renderToolList(reg)
	if !strings.Contains(list, "✅ nmap") {
		t.Errorf("installed tool not marked: %s", list)
	}
	if !strings.Contains(list, "❌ nikto") {
		t.Errorf("missing tool not marked: %s", list)
	}
}

func TestRenderCategoryUnknown(t *testing.T) {
	reg, err := catalog.NewRegistry(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := renderCategory(reg, "ghosts"); !strings.Contains(got, "No tools") {
		t.Errorf("got %q", got)
	}
}
