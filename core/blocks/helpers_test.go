package blocks_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/blockmail/core/blocks"
)

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

// findAll returns every element with the given tag name in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func paragraph(text string) blocks.Block {
	return blocks.Block{
		Type: blocks.TypeParagraph,
		Properties: blocks.ParagraphProperties{TextStyle: blocks.TextStyle{
			Text:       text,
			FontFamily: "Georgia, serif",
			FontSize:   14,
			FontWeight: "normal",
			Color:      "#333333",
			LineHeight: "1.5",
			Align:      "left",
		}},
	}
}

func baseSettings() blocks.Settings {
	return blocks.Settings{
		BackgroundColor: "#f4f4f4",
		FontFamily:      "Arial, sans-serif",
		ContentWidth:    600,
	}
}
