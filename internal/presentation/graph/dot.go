package graph

import (
	"fmt"
	"strings"

	"sttp/pkg/domain"
)

// DOT produces graphviz DOT source for a transition table: one node per
// state, one labeled directed edge per transition. Node registration is
// idempotent; parallel transitions between the same pair of states stay
// separate edges.
func DOT(table domain.Table) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")

	seen := make(map[string]bool)
	node := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		sb.WriteString(fmt.Sprintf("\t\"%s\"\n", EscapeLabel(name)))
	}

	for _, t := range table {
		node(t.Source)
		node(t.Dest)
		sb.WriteString(fmt.Sprintf("\t\"%s\" -> \"%s\" [label=\"%s\"]\n",
			EscapeLabel(t.Source), EscapeLabel(t.Dest), EscapeLabel(t.Trigger)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// EscapeLabel escapes characters that would break out of a quoted DOT string.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}
