// Package content inspects memo bodies: deriving display titles,
// collecting inline #tags, and locating embedded resource references.
package content

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Title returns the text of the first heading in the memo body. When the
// body has no heading, the first non-empty line is used instead.
func Title(source string) string {
	content := []byte(source)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if heading, ok := n.(*ast.Heading); ok && entering {
			title = extractText(heading, content)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if title != "" {
		return title
	}

	for line := range strings.Lines(source) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

// Tags collects #tag tokens from the text of the memo body, in document
// order, deduplicated. Code spans and code blocks are not scanned.
func Tags(source string) []string {
	content := []byte(source)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	var tags []string
	seen := make(map[string]struct{})

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.CodeSpan, *ast.FencedCodeBlock, *ast.CodeBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			for _, word := range strings.Fields(string(node.Segment.Value(content))) {
				tag, ok := parseTag(word)
				if !ok {
					continue
				}
				if _, dup := seen[tag]; dup {
					continue
				}
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
		return ast.WalkContinue, nil
	})

	return tags
}

func parseTag(word string) (string, bool) {
	if !strings.HasPrefix(word, "#") {
		return "", false
	}
	tag := strings.TrimFunc(word[1:], func(r rune) bool {
		return unicode.IsPunct(r) && r != '/' && r != '-' && r != '_'
	})
	if tag == "" || strings.HasPrefix(tag, "#") {
		return "", false
	}
	return tag, true
}

func extractText(node ast.Node, content []byte) string {
	var buf bytes.Buffer

	var stack []ast.Node
	stack = append(stack, node)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if textNode, ok := current.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(content))
			continue
		}

		for child := current.LastChild(); child != nil; child = child.PreviousSibling() {
			stack = append(stack, child)
		}
	}

	return buf.String()
}
