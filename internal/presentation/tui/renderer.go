package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects a light or dark background automatically.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// CatalogMarkdown lists traits as a markdown table with their descriptions.
func CatalogMarkdown(title string, traits []domain.Trait) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if len(traits) == 0 {
		sb.WriteString("_No traits defined._\n")
		return sb.String()
	}

	sb.WriteString("| Trait | Distribution | Description |\n")
	sb.WriteString("|---|---|---|\n")
	for _, t := range traits {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", t.Name(), t.Kind(), t.String())
	}
	return sb.String()
}
