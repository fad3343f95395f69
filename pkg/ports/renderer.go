package ports

import (
	"context"
	"fmt"
)

// Format selects the image encoding of a rendered graph.
type Format string

// Supported render formats. The set is fixed; adapters reject anything else.
const (
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatPS   Format = "ps"
)

// DefaultFormat is used when the caller does not pick one.
const DefaultFormat = FormatPDF

// Formats returns all supported render formats.
func Formats() []Format {
	return []Format{FormatPDF, FormatPNG, FormatSVG, FormatJPEG, FormatGIF, FormatPS}
}

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported render format %q (supported: %v)", s, Formats())
}

// RenderRequest carries everything a renderer needs to produce one image.
type RenderRequest struct {
	// Source is the graph description in DOT syntax.
	Source string
	// OutputPath is where the image is written; the format extension is
	// appended when missing.
	OutputPath string
	Format     Format
	// View opens the rendered file with the platform viewer after writing.
	View bool
}

// Renderer turns a graph description into an image file.
// Implementations own layout, encoding and file writing; the core only
// supplies the edge list as DOT text. Render returns the path of the
// written file.
type Renderer interface {
	Render(ctx context.Context, req RenderRequest) (string, error)
}
