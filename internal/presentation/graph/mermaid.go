package graph

import (
	"fmt"
	"strings"

	"sttp/pkg/domain"
)

// Mermaid produces a Mermaid flowchart (graph TD) of the transition table,
// suitable for embedding in Markdown. State names become sanitized node IDs
// with the original name kept as the display label.
func Mermaid(table domain.Table) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[string]bool)
	node := func(name string) {
		id := sanitizeMermaidID(name)
		if seen[id] {
			return
		}
		seen[id] = true
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, name))
	}

	for _, t := range table {
		node(t.Source)
		node(t.Dest)

		// Escape double quotes in the trigger for the Mermaid edge label
		label := strings.ReplaceAll(t.Trigger, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(t.Source), label, sanitizeMermaidID(t.Dest)))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
