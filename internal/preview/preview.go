// Package preview renders note content for the read-only preview pane:
// glamour for markdown, chroma syntax highlighting for everything else it
// recognizes, plain wrapped text as the fallback.
package preview

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
)

// Renderer turns raw note content into styled terminal output. It caches
// the glamour renderer and rebuilds it only when the wrap width changes.
type Renderer struct {
	style string
	width int
	md    *glamour.TermRenderer
}

// New creates a renderer with the given glamour style: "auto", "dark",
// "light", or "notty".
func New(style string) *Renderer {
	return &Renderer{style: style}
}

// Render produces the preview for content. Markdown extensions get the
// full glamour treatment; other known extensions get syntax highlighting;
// anything else is word-wrapped as-is. Render never fails: on any renderer
// error it falls back to plain text.
func (r *Renderer) Render(content, extension string, width int) string {
	switch strings.ToLower(extension) {
	case "md", "markdown":
		if out, err := r.renderMarkdown(content, width); err == nil {
			return out
		}
		return WrapText(content, width)
	default:
		if out, ok := highlight(content, extension); ok {
			return out
		}
		return WrapText(content, width)
	}
}

func (r *Renderer) renderMarkdown(content string, width int) (string, error) {
	if r.md == nil || r.width != width {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if r.style == "auto" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(r.style))
		}
		md, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", err
		}
		r.md = md
		r.width = width
	}
	return r.md.Render(content)
}

// highlight syntax-highlights content when chroma has a lexer for the
// extension. Reports false for unknown extensions so the caller can fall
// back to plain text.
func highlight(content, extension string) (string, bool) {
	if extension == "" || extension == "txt" {
		return "", false
	}
	if lexers.Get(extension) == nil {
		return "", false
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, extension, "terminal256", "monokai"); err != nil {
		return "", false
	}
	return buf.String(), true
}

// WrapText hard-wraps text at width, breaking on spaces where possible.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for len(line) > width {
			cut := strings.LastIndex(line[:width], " ")
			if cut <= 0 {
				cut = width
			}
			out = append(out, line[:cut])
			line = strings.TrimLeft(line[cut:], " ")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
