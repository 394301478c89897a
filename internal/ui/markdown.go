package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

type rendererKey struct {
	width int
	dark  bool
}

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]*glamour.TermRenderer{}
)

// renderMarkdown formats markdown for terminal output at the given
// width, styled to match the active palette. When a renderer cannot
// be built or rendering fails, the input is word-wrapped as-is.
func renderMarkdown(width int, dark bool, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	r := markdownRenderer(width, dark)
	if r == nil {
		return wordwrap.String(input, width)
	}
	out, err := r.Render(input)
	if err != nil {
		return wordwrap.String(input, width)
	}
	return strings.Trim(out, "\n")
}

// markdownRenderer returns a cached renderer for the width/palette
// combination. Renderer construction is not cheap, and the width only
// changes on resize.
func markdownRenderer(width int, dark bool) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	k := rendererKey{width: width, dark: dark}
	if cached, ok := renderers[k]; ok {
		return cached
	}

	styleName := "light"
	if dark {
		styleName = "dark"
	}
	created, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[k] = created
	return created
}
