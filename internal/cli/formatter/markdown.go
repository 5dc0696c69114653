package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderMarkdown renders the block subset used by the concept explainer
// (headings, paragraphs, quotes, lists and tables) for the terminal.
// Paragraphs wrap at width when it is positive.
func RenderMarkdown(src string, width int) string {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if b := renderBlock(n, source, width); b != "" {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func renderBlock(n ast.Node, src []byte, width int) string {
	switch n := n.(type) {
	case *ast.Heading:
		if n.Level == 1 {
			return Header(inlineText(n, src))
		}
		return StyleHeader.Render(inlineText(n, src))

	case *ast.Paragraph, *ast.TextBlock:
		return Wrap(inlineText(n, src), width)

	case *ast.Blockquote:
		quote := lipgloss.NewStyle().Foreground(ColorPurple).Italic(true)
		var lines []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			lines = append(lines, StyleDim.Render("│ ")+quote.Render(inlineText(c, src)))
		}
		return strings.Join(lines, "\n")

	case *ast.List:
		var items []string
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			var parts []string
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				parts = append(parts, inlineText(c, src))
			}
			items = append(items, strings.Join(parts, " "))
		}
		return Bullets(StyleYellow.Render("•"), items)

	case *east.Table:
		var headers []string
		var rows [][]string
		for r := n.FirstChild(); r != nil; r = r.NextSibling() {
			var cells []string
			for c := r.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, inlineText(c, src))
			}
			if _, ok := r.(*east.TableHeader); ok {
				headers = cells
				continue
			}
			rows = append(rows, cells)
		}
		return strings.TrimRight(RenderTable(headers, rows), "\n")
	}
	return ""
}

// inlineText flattens the inline children of n. Strong emphasis is bold.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
			if c.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.Emphasis:
			if c.Level >= 2 {
				b.WriteString(Bold(inlineText(c, src)))
			} else {
				b.WriteString(inlineText(c, src))
			}
		default:
			b.WriteString(inlineText(c, src))
		}
	}
	return b.String()
}
