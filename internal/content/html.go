// ABOUTME: HTML to plain paragraphs for typing: block elements become line breaks
// ABOUTME: Scripts, styles and page chrome are skipped; inline markup is flattened

package content

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML extracts the readable text of an HTML document, one paragraph
// per line.
func FromHTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var b strings.Builder
	extractText(doc, &b)

	var paras []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			paras = append(paras, line)
		}
	}
	return strings.Join(paras, "\n"), nil
}

func extractText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head", "nav", "footer", "iframe", "noscript", "template":
			return
		case "br":
			b.WriteByte('\n')
		case "li":
			b.WriteString("\n- ")
		}
		if isBlock(n.Data) {
			b.WriteByte('\n')
		}
	}

	if n.Type == html.TextNode {
		// Source line breaks inside a paragraph are just spaces.
		b.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, b)
	}

	if n.Type == html.ElementNode && isBlock(n.Data) {
		b.WriteByte('\n')
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "main", "blockquote", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "tr", "table", "hr":
		return true
	}
	return false
}
