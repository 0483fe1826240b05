package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"kalibot/model"
)

// wireResponse mirrors the JSON contract given to the model. Pointer fields
// distinguish "absent" from "empty", which the tag count relies on.
type wireResponse struct {
	Conversation *string `json:"conversation"`

	Tool        *string        `json:"tool"`
	Parameters  map[string]any `json:"parameters"`
	Explanation string         `json:"explanation"`

	Question    *string  `json:"question"`
	Suggestions []string `json:"suggestions"`

	ToolNotInstalled *string `json:"tool_not_installed"`
	InstallCommand   string  `json:"install_command"`

	Error      *string `json:"error"`
	Suggestion string  `json:"suggestion"`
}

// ParseResponse decodes the model's reply into the response union. It strips
// one leading markdown fence (``` or ```json) the way models tend to wrap
// JSON, then requires exactly one discriminator key. Anything else — prose,
// invalid JSON, zero tags, multiple tags — fails closed with a
// MalformedResponseError carrying the raw text. There is no retry here;
// the caller decides how to surface the failure.
func ParseResponse(raw string) (model.RoutedResponse, error) {
	cleaned := stripFence(raw)

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()
	var wire wireResponse
	if err := dec.Decode(&wire); err != nil {
		return model.RoutedResponse{}, &model.MalformedResponseError{Raw: raw, Err: err}
	}

	tags := 0
	for _, set := range []bool{
		wire.Conversation != nil,
		wire.Tool != nil,
		wire.Question != nil,
		wire.ToolNotInstalled != nil,
		wire.Error != nil,
	} {
		if set {
			tags++
		}
	}
	if tags != 1 {
		return model.RoutedResponse{}, &model.MalformedResponseError{
			Raw: raw,
			Err: fmt.Errorf("expected exactly one response tag, got %d", tags),
		}
	}

	switch {
	case wire.Conversation != nil:
		return model.Conversation(*wire.Conversation), nil
	case wire.Tool != nil:
		return model.ToolCall(*wire.Tool, normalizeParams(wire.Parameters), wire.Explanation), nil
	case wire.Question != nil:
		return model.Question(*wire.Question, wire.Suggestions), nil
	case wire.ToolNotInstalled != nil:
		return model.ToolNotInstalled(*wire.ToolNotInstalled, wire.InstallCommand, wire.Explanation), nil
	default:
		return model.ErrorResponse(*wire.Error, wire.Suggestion), nil
	}
}

// stripFence removes one enclosing markdown code fence, tolerating a
// language tag on the opening line.
func stripFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	body := strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		first := strings.TrimSpace(body[:nl])
		// The first line is a language tag (```json) or empty (bare fence).
		if first == "" || !strings.ContainsAny(first, "{}") {
			body = body[nl+1:]
		}
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// normalizeParams converts json.Number values to float64 so downstream
// builders see the same numeric type regardless of decoder settings.
func normalizeParams(params map[string]any) map[string]any {
	for k, v := range params {
		if n, ok := v.(json.Number); ok {
			if f, err := n.Float64(); err == nil {
				params[k] = f
			}
		}
	}
	return params
}
