package assistant

import (
	"errors"
	"testing"

	"kalibot/model"
)

func TestParseResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.ResponseKind
	}{
		{
			name: "conversation",
			raw:  `{"conversation": "hello there"}`,
			want: model.KindConversation,
		},
		{
			name: "tool call",
			raw:  `{"tool": "nmap", "parameters": {"target": "10.0.0.5"}, "explanation": "basic scan"}`,
			want: model.KindTool,
		},
		{
			name: "question",
			raw:  `{"question": "which target?", "suggestions": ["10.0.0.5", "example.com"]}`,
			want: model.KindQuestion,
		},
		{
			name: "tool not installed",
			raw:  `{"tool_not_installed": "nikto", "install_command": "sudo apt install nikto"}`,
			want: model.KindToolNotInstalled,
		},
		{
			name: "error",
			raw:  `{"error": "no target", "suggestion": "name a host"}`,
			want: model.KindError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.raw)
			if err != nil {
				t.Fatalf("ParseResponse() error: %v", err)
			}
			if got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestParseResponseFields(t *testing.T) {
	got, err := ParseResponse(`{"tool": "gobuster", "parameters": {"target": "http://x", "threads": 20}, "explanation": "dir scan"}`)
	if err != nil {
		t.Fatalf("ParseResponse() error: %v", err)
	}
	if got.ToolName != "gobuster" {
		t.Errorf("ToolName = %q", got.ToolName)
	}
	if got.Explanation != "dir scan" {
		t.Errorf("Explanation = %q", got.Explanation)
	}
	threads, ok := got.Parameters["threads"].(float64)
	if !ok || threads != 20 {
		t.Errorf("threads = %v (%T), want float64 20", got.Parameters["threads"], got.Parameters["threads"])
	}
}

func TestParseResponseStripsFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"conversation\": \"hi\"}\n```"},
		{"bare fence", "```\n{\"conversation\": \"hi\"}\n```"},
		{"fence with surrounding whitespace", "  ```json\n{\"conversation\": \"hi\"}\n```  "},
		{"no fence", `{"conversation": "hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.raw)
			if err != nil {
				t.Fatalf("ParseResponse() error: %v", err)
			}
			if got.Kind != model.KindConversation || got.Text != "hi" {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestParseResponseFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose", "I would run nmap against the target."},
		{"invalid json", `{"conversation": `},
		{"zero tags", `{"parameters": {"target": "x"}}`},
		{"multiple tags", `{"conversation": "hi", "tool": "nmap"}`},
		{"empty object", `{}`},
		{"array", `[1, 2, 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			if err == nil {
				t.Fatal("ParseResponse() succeeded, want MalformedResponseError")
			}
			var malformed *model.MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("error type = %T, want *model.MalformedResponseError", err)
			}
			if malformed.Raw != tt.raw {
				t.Errorf("Raw = %q, want original input", malformed.Raw)
			}
		})
	}
}

func TestParseResponseEmptyTagValues(t *testing.T) {
	// An empty string is still a present tag; fail-closed applies to
	// missing tags, not empty ones.
	got, err := ParseResponse(`{"conversation": ""}`)
	if err != nil {
		t.Fatalf("ParseResponse() error: %v", err)
	}
	if got.Kind != model.KindConversation {
		t.Errorf("Kind = %v", got.Kind)
	}
}
