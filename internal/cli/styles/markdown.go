package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a task description as terminal markdown.
// Falls back to the raw text when rendering fails.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Italic(true).Render("No description")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
