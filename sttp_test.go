package sttp_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sttp"
	"sttp/pkg/domain"
	"sttp/pkg/ports"
)

const sampleTable = `SOURCE,DEST,TRIGGER
Idle,Running,_start
,Running,__10
Running,Idle,stop
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParser_Table(t *testing.T) {
	parser := sttp.New(writeTable(t, sampleTable))

	table, err := parser.Table()
	require.NoError(t, err)

	want := domain.Table{
		{Trigger: "EVT_start", Source: "Idle", Dest: "Running"},
		{Trigger: "(after 10 sec.)", Source: "Idle", Dest: "Running"},
		{Trigger: "stop", Source: "Running", Dest: "Idle"},
	}
	assert.Equal(t, want, table)
}

func TestNew_AppendsCSVExtension(t *testing.T) {
	path := writeTable(t, sampleTable)

	parser := sttp.New(strings.TrimSuffix(path, ".csv"))
	assert.Equal(t, path, parser.Path())

	_, err := parser.Table()
	require.NoError(t, err)
}

func TestParser_JSON(t *testing.T) {
	parser := sttp.New(writeTable(t, "SOURCE,DEST,TRIGGER\nIdle,Running,_start\n"))

	first, err := parser.JSON()
	require.NoError(t, err)

	want := `{
    "transitions": [
        {
            "trigger": "EVT_start",
            "source": "Idle",
            "dest": "Running"
        }
    ]
}`
	assert.Equal(t, want, first)

	// Exporting twice is byte-identical.
	second, err := parser.JSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParser_JSONEmptyTable(t *testing.T) {
	parser := sttp.New(writeTable(t, "SOURCE,DEST,TRIGGER\n"))

	out, err := parser.JSON()
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"transitions\": []\n}", out)
}

func TestParser_YAML(t *testing.T) {
	parser := sttp.New(writeTable(t, "SOURCE,DEST,TRIGGER\nIdle,Running,_start\n"))

	out, err := parser.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "transitions:")
	assert.Contains(t, out, "trigger: EVT_start")

	// Same key order contract as the JSON export.
	assert.Less(t, strings.Index(out, "trigger:"), strings.Index(out, "source:"))
	assert.Less(t, strings.Index(out, "source:"), strings.Index(out, "dest:"))
}

func TestParser_AdjacencyLastWriteWins(t *testing.T) {
	parser := sttp.New(writeTable(t, "SOURCE,DEST,TRIGGER\nA,B,x\nA,B,y\n"))

	adj, err := parser.Adjacency()
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{"A": {"B": "y"}}, adj)

	// The table itself keeps both rows; only the adjacency view collapses.
	table, err := parser.Table()
	require.NoError(t, err)
	assert.Len(t, table, 2)
}

func TestParser_DOT(t *testing.T) {
	parser := sttp.New(writeTable(t, sampleTable))

	dot, err := parser.DOT()
	require.NoError(t, err)
	assert.Contains(t, dot, `"Idle" -> "Running" [label="EVT_start"]`)
	assert.Contains(t, dot, `"Running" -> "Idle" [label="stop"]`)
}

func TestParser_Mermaid(t *testing.T) {
	parser := sttp.New(writeTable(t, sampleTable))

	out, err := parser.Mermaid()
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `Idle -- "EVT_start" --> Running`)
}

func TestParser_ErrorPropagation(t *testing.T) {
	parser := sttp.New(writeTable(t, "SOURCE,DEST,TRIGGER\nRunning,,stop\n"))

	_, err := parser.Table()
	assert.ErrorIs(t, err, domain.ErrMissingDest)

	// Every derived view reports the same parse failure.
	_, err = parser.JSON()
	assert.ErrorIs(t, err, domain.ErrMissingDest)
	_, err = parser.YAML()
	assert.ErrorIs(t, err, domain.ErrMissingDest)
	_, err = parser.DOT()
	assert.ErrorIs(t, err, domain.ErrMissingDest)
	_, err = parser.Adjacency()
	assert.ErrorIs(t, err, domain.ErrMissingDest)
}

func TestParser_MissingFile(t *testing.T) {
	parser := sttp.New(filepath.Join(t.TempDir(), "nope"))

	_, err := parser.Table()
	assert.Error(t, err)
}

// captureRenderer records the request handed to the external renderer.
type captureRenderer struct {
	req ports.RenderRequest
}

func (c *captureRenderer) Render(_ context.Context, req ports.RenderRequest) (string, error) {
	c.req = req
	return req.OutputPath, nil
}

func TestParser_RenderDelegates(t *testing.T) {
	capture := &captureRenderer{}
	parser := sttp.New(writeTable(t, sampleTable), sttp.WithRenderer(capture))

	out, err := parser.Render(context.Background(), "machine", ports.FormatPNG, true)
	require.NoError(t, err)
	assert.Equal(t, "machine", out)

	assert.Equal(t, ports.FormatPNG, capture.req.Format)
	assert.True(t, capture.req.View)
	assert.Contains(t, capture.req.Source, "digraph {")
}
