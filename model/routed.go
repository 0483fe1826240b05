package model

// ResponseKind identifies which arm of the RoutedResponse union is populated.
//
// The set is closed: the response parser classifies anything outside it as
// KindUnknown, and the dispatcher treats KindUnknown exactly like a parse
// failure. New kinds require a new constant here plus explicit handling in
// every dispatcher.
type ResponseKind string

const (
	KindConversation     ResponseKind = "conversation"
	KindTool             ResponseKind = "tool"
	KindQuestion         ResponseKind = "question"
	KindToolNotInstalled ResponseKind = "tool_not_installed"
	KindError            ResponseKind = "error"
	KindUnknown          ResponseKind = "unknown"
)

// RoutedResponse is the classified outcome of parsing a language-model reply.
// Exactly one arm is meaningful, selected by Kind.
type RoutedResponse struct {
	Kind ResponseKind

	// KindConversation / KindQuestion
	Text        string
	Suggestions []string // KindQuestion only

	// KindTool / KindToolNotInstalled
	ToolName       string
	Parameters     map[string]any
	Explanation    string
	InstallCommand string // KindToolNotInstalled only

	// KindError
	ErrorMessage string
	Suggestion   string
}

// Conversation builds a plain conversational response.
func Conversation(text string) RoutedResponse {
	return RoutedResponse{Kind: KindConversation, Text: text}
}

// ToolCall builds a tool-execution response.
func ToolCall(name string, params map[string]any, explanation string) RoutedResponse {
	return RoutedResponse{
		Kind:        KindTool,
		ToolName:    name,
		Parameters:  params,
		Explanation: explanation,
	}
}

// Question builds a clarifying-question response.
func Question(text string, suggestions []string) RoutedResponse {
	return RoutedResponse{Kind: KindQuestion, Text: text, Suggestions: suggestions}
}

// ToolNotInstalled builds a missing-tool response carrying the suggested
// install command.
func ToolNotInstalled(name, installCommand, explanation string) RoutedResponse {
	return RoutedResponse{
		Kind:           KindToolNotInstalled,
		ToolName:       name,
		InstallCommand: installCommand,
		Explanation:    explanation,
	}
}

// ErrorResponse builds an error response with an optional remediation hint.
func ErrorResponse(message, suggestion string) RoutedResponse {
	return RoutedResponse{Kind: KindError, ErrorMessage: message, Suggestion: suggestion}
}
