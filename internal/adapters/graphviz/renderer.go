package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"sttp/pkg/ports"
)

// Renderer renders DOT sources with the local graphviz installation.
type Renderer struct {
	// Command is the layout binary to invoke. Defaults to "dot".
	Command string
}

// NewRenderer creates a renderer using the default graphviz binary.
func NewRenderer() *Renderer {
	return &Renderer{Command: "dot"}
}

// Render pipes the DOT source through graphviz and writes the image to
// req.OutputPath. With req.View set, the written file is handed to the
// platform opener.
func (r *Renderer) Render(ctx context.Context, req ports.RenderRequest) (string, error) {
	if _, err := ports.ParseFormat(string(req.Format)); err != nil {
		return "", err
	}

	out := req.OutputPath
	if ext := "." + string(req.Format); !strings.HasSuffix(out, ext) {
		out += ext
	}

	cmd := exec.CommandContext(ctx, r.Command, "-T"+string(req.Format), "-o", out)
	cmd.Stdin = strings.NewReader(req.Source)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("rendering with %s failed: %v: %s", r.Command, err, stderr.String())
	}

	if req.View {
		if err := openFile(ctx, out); err != nil {
			return "", err
		}
	}
	return out, nil
}

// openFile opens path with the platform file opener. The viewer is started
// detached; its exit status is not awaited.
func openFile(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}
