package graph_test

import (
	"strings"
	"testing"

	"sttp/internal/presentation/graph"
	"sttp/pkg/domain"
)

func TestMermaid(t *testing.T) {
	tests := []struct {
		name     string
		table    domain.Table
		contains []string
	}{
		{
			name: "Flowchart Header And Edges",
			table: domain.Table{
				{Trigger: "EVT_start", Source: "Idle", Dest: "Running"},
			},
			contains: []string{
				"graph TD\n",
				"    Idle[\"Idle\"]\n",
				"    Running[\"Running\"]\n",
				"    Idle -- \"EVT_start\" --> Running\n",
			},
		},
		{
			name: "ID Sanitization",
			table: domain.Table{
				{Trigger: "go", Source: "My State.v1", Dest: "other-state"},
			},
			contains: []string{
				"My_State_v1[\"My State.v1\"]",
				"other_state[\"other-state\"]",
				"My_State_v1 -- \"go\" --> other_state",
			},
		},
		{
			name: "Label Escaping",
			table: domain.Table{
				{Trigger: `say "hi"`, Source: "A", Dest: "B"},
			},
			contains: []string{
				`-- "say 'hi'" -->`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.Mermaid(tt.table)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Mermaid() = \n%v\nWant substring: %q", got, want)
				}
			}
		})
	}
}
