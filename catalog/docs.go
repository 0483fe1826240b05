package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// RenderDocs produces the natural-language tool documentation inserted into
// the assistant's system prompt. Output is deterministic: categories appear
// in registration order, tools in registration order within each category,
// and parameters sorted with required ones first.
//
// Only installed tools are documented when onlyInstalled is set; the model
// should not be offered tools the dispatcher would refuse.
func (r *Registry) RenderDocs(onlyInstalled bool) string {
	var b strings.Builder
	for _, cat := range r.Categories() {
		var rendered []string
		for _, e := range r.ByCategory(cat) {
			if onlyInstalled && !e.Installed {
				continue
			}
			rendered = append(rendered, renderTool(e))
		}
		if len(rendered) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", strings.ReplaceAll(cat, "_", " "))
		for _, t := range rendered {
			b.WriteString(t)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTool(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n%s\n", e.Tool.Name, e.Tool.Description)

	names := sortedParams(e)
	if len(names) > 0 {
		b.WriteString("Parameters:\n")
	}
	required := requiredSet(e)
	for _, name := range names {
		prop, _ := e.Tool.InputSchema.Properties[name].(map[string]any)
		b.WriteString(renderParam(name, prop, required[name]))
	}
	return b.String()
}

// sortedParams returns property names with required parameters first, each
// group alphabetical.
func sortedParams(e Entry) []string {
	required := requiredSet(e)
	names := make([]string, 0, len(e.Tool.InputSchema.Properties))
	for name := range e.Tool.InputSchema.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := required[names[i]], required[names[j]]
		if ri != rj {
			return ri
		}
		return names[i] < names[j]
	})
	return names
}

func requiredSet(e Entry) map[string]bool {
	set := make(map[string]bool, len(e.Tool.InputSchema.Required))
	for _, name := range e.Tool.InputSchema.Required {
		set[name] = true
	}
	return set
}

func renderParam(name string, prop map[string]any, required bool) string {
	var parts []string
	if t, ok := prop["type"].(string); ok {
		parts = append(parts, t)
	}
	if required {
		parts = append(parts, "required")
	}
	if enum := enumValues(prop); enum != "" {
		parts = append(parts, "one of: "+enum)
	}
	if def, ok := prop["default"]; ok {
		parts = append(parts, fmt.Sprintf("default: %v", def))
	}

	line := "- " + name
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	if desc, ok := prop["description"].(string); ok && desc != "" {
		line += ": " + desc
	}
	return line + "\n"
}

func enumValues(prop map[string]any) string {
	raw, ok := prop["enum"]
	if !ok {
		return ""
	}
	var vals []string
	switch vs := raw.(type) {
	case []string:
		vals = vs
	case []any:
		for _, v := range vs {
			vals = append(vals, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(vals, "|")
}
