package sttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"sttp/internal/adapters/graphviz"
	"sttp/internal/compiler"
	"sttp/internal/logging"
	"sttp/internal/presentation/graph"
	"sttp/pkg/domain"
	"sttp/pkg/ports"
)

// csvExtension is appended to input paths that do not carry it.
const csvExtension = ".csv"

// Parser is the entry point of the library. It reads one state transition
// table document and exposes derived views of it. All views are computed
// lazily on first access and memoized for the lifetime of the instance;
// re-parsing requires a new Parser.
//
// A fully built table is immutable, so concurrent reads are safe.
type Parser struct {
	path     string
	logger   *slog.Logger
	renderer ports.Renderer

	tableOnce sync.Once
	table     domain.Table
	tableErr  error

	jsonOnce sync.Once
	json     string
	jsonErr  error

	yamlOnce sync.Once
	yaml     string
	yamlErr  error

	dotOnce sync.Once
	dot     string

	mermaidOnce sync.Once
	mermaid     string

	adjOnce sync.Once
	adj     map[string]map[string]string
}

// Option defines a functional option for configuring the Parser.
type Option func(*Parser)

// WithLogger sets a custom structured logger. The default discards
// everything; errors are returned, never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithRenderer injects a custom graph renderer, bypassing the default
// graphviz adapter.
func WithRenderer(r ports.Renderer) Option {
	return func(p *Parser) {
		p.renderer = r
	}
}

// New creates a parser for the given table file. A path without the .csv
// extension gets it appended. The file is not touched until the first view
// is requested.
func New(path string, opts ...Option) *Parser {
	if !strings.HasSuffix(path, csvExtension) {
		path += csvExtension
	}
	p := &Parser{path: path}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.renderer == nil {
		p.renderer = graphviz.NewRenderer()
	}
	return p
}

// Path returns the resolved input path.
func (p *Parser) Path() string { return p.path }

// Table parses the document on first call and returns the frozen transition
// sequence. Later calls return the memoized result, error included.
func (p *Parser) Table() (domain.Table, error) {
	p.tableOnce.Do(func() {
		f, err := os.Open(p.path)
		if err != nil {
			p.tableErr = fmt.Errorf("opening table: %w", err)
			return
		}
		defer f.Close()

		p.table, p.tableErr = compiler.NewParser().Parse(f)
		if p.tableErr == nil {
			p.logger.Debug("table parsed", "path", p.path, "transitions", len(p.table))
		}
	})
	return p.table, p.tableErr
}

// Adjacency returns the table as source -> dest -> trigger. When two rows
// share the same (source, dest) pair the later row wins; the other views
// keep both.
func (p *Parser) Adjacency() (map[string]map[string]string, error) {
	table, err := p.Table()
	if err != nil {
		return nil, err
	}
	p.adjOnce.Do(func() {
		p.adj = table.Adjacency()
	})
	return p.adj, nil
}

// export is the envelope of the structured exports. The single top-level
// key and the per-transition field order are a compatibility contract with
// consumers diffing the output.
type export struct {
	Transitions domain.Table `json:"transitions" yaml:"transitions"`
}

// JSON returns the structured export as indented JSON. Output is
// byte-stable across calls.
func (p *Parser) JSON() (string, error) {
	table, err := p.Table()
	if err != nil {
		return "", err
	}
	p.jsonOnce.Do(func() {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		if err := enc.Encode(export{Transitions: table}); err != nil {
			p.jsonErr = fmt.Errorf("encoding table: %w", err)
			return
		}
		p.json = strings.TrimSuffix(buf.String(), "\n")
	})
	return p.json, p.jsonErr
}

// YAML returns the structured export as YAML, with the same key order as
// the JSON form.
func (p *Parser) YAML() (string, error) {
	table, err := p.Table()
	if err != nil {
		return "", err
	}
	p.yamlOnce.Do(func() {
		out, err := yaml.Marshal(export{Transitions: table})
		if err != nil {
			p.yamlErr = fmt.Errorf("encoding table: %w", err)
			return
		}
		p.yaml = string(out)
	})
	return p.yaml, p.yamlErr
}

// DOT returns the graph description of the state machine in graphviz DOT
// syntax.
func (p *Parser) DOT() (string, error) {
	table, err := p.Table()
	if err != nil {
		return "", err
	}
	p.dotOnce.Do(func() {
		p.dot = graph.DOT(table)
	})
	return p.dot, nil
}

// Mermaid returns the graph description as a Mermaid flowchart.
func (p *Parser) Mermaid() (string, error) {
	table, err := p.Table()
	if err != nil {
		return "", err
	}
	p.mermaidOnce.Do(func() {
		p.mermaid = graph.Mermaid(table)
	})
	return p.mermaid, nil
}

// Render produces an image of the state machine graph by delegating the DOT
// source to the configured renderer. It returns the path of the written
// file.
func (p *Parser) Render(ctx context.Context, outputPath string, format ports.Format, view bool) (string, error) {
	dot, err := p.DOT()
	if err != nil {
		return "", err
	}
	p.logger.Debug("rendering graph", "output", outputPath, "format", format, "view", view)
	return p.renderer.Render(ctx, ports.RenderRequest{
		Source:     dot,
		OutputPath: outputPath,
		Format:     format,
		View:       view,
	})
}
