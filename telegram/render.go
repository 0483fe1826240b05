package telegram

import (
	"fmt"
	"strings"

	"kalibot/assistant"
	"kalibot/catalog"
	"kalibot/model"
)

// Pure rendering of routing outcomes into message text, kept apart from the
// bot loop so the formats are testable without a live API.

func renderResolution(r assistant.Resolution) []string {
	switch r.Response.Kind {
	case model.KindConversation:
		return []string{r.Response.Text}
	case model.KindQuestion:
		return []string{renderQuestion(r.Response)}
	case model.KindToolNotInstalled:
		return []string{renderNotInstalled(r.Response)}
	case model.KindError:
		return []string{renderError(r.Response)}
	case model.KindTool:
		return renderResult(r)
	default:
		return []string{"I could not route that request."}
	}
}

func renderQuestion(resp model.RoutedResponse) string {
	var b strings.Builder
	b.WriteString(resp.Text)
	if len(resp.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, s := range resp.Suggestions {
			b.WriteString("\n• ")
			b.WriteString(s)
		}
	}
	return b.String()
}

func renderNotInstalled(resp model.RoutedResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ %s is not installed.\n", resp.ToolName)
	if resp.Explanation != "" {
		b.WriteString(resp.Explanation)
		b.WriteString("\n")
	}
	if resp.InstallCommand != "" {
		fmt.Fprintf(&b, "\nInstall with:\n`%s`", resp.InstallCommand)
	}
	return b.String()
}

func renderError(resp model.RoutedResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ %s", resp.ErrorMessage)
	if resp.Suggestion != "" {
		fmt.Fprintf(&b, "\n💡 %s", resp.Suggestion)
	}
	return b.String()
}

// renderResult produces the messages for a completed tool run: a header,
// then the output chunked inside code fences.
func renderResult(r assistant.Resolution) []string {
	resp, res := r.Response, r.Result
	if res == nil {
		return []string{fmt.Sprintf("🔧 %s finished with no output.", resp.ToolName)}
	}

	header := fmt.Sprintf("🔧 %s", resp.ToolName)
	if resp.Explanation != "" {
		header += "\n" + resp.Explanation
	}
	header += "\n`" + res.Command + "`"
	if res.ExitCode != 0 {
		header += fmt.Sprintf("\nexit code %d", res.ExitCode)
	}

	output := res.Output()
	if output == "" {
		return []string{header + "\n\n(no output)"}
	}

	msgs := []string{header}
	for _, chunk := range SplitMessage(output, MessageLimit) {
		msgs = append(msgs, "```\n"+chunk+"\n```")
	}
	return msgs
}

func renderToolList(reg *catalog.Registry) string {
	var b strings.Builder
	b.WriteString("🧰 *Tools*\n")
	for _, cat := range reg.Categories() {
		fmt.Fprintf(&b, "\n*%s*\n", strings.ReplaceAll(cat, "_", " "))
		for _, e := range reg.ByCategory(cat) {
			mark := "❌"
			if e.Installed {
				mark = "✅"
			}
			fmt.Fprintf(&b, "%s %s — %s\n", mark, e.Tool.Name, e.Tool.Description)
		}
	}
	return b.String()
}

func renderCategory(reg *catalog.Registry, category string) string {
	entries := reg.ByCategory(category)
	if len(entries) == 0 {
		return fmt.Sprintf("No tools in category %q.", category)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", strings.ReplaceAll(category, "_", " "))
	for _, e := range entries {
		mark := "❌"
		if e.Installed {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s *%s*\n%s\n\n", mark, e.Tool.Name, e.Tool.Description)
	}
	return b.String()
}

const helpText = `🤖 *KaliBot*

Talk to me in plain language and I will route your request to the right security tool:

_"scan ports 1-1000 on 10.0.0.5"_
_"what web technologies does example.com use?"_
_"brute force ssh on 10.0.0.5 as root"_

*Commands*
/tools — list every tool and whether it is installed
/categories — browse tools by category
/status — assistant and system status
/clear — forget our conversation so far
/help — this message

Only run tools against systems you are authorized to test.`
