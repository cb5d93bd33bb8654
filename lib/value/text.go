// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Text is CommonMark source that contains no raw HTML. The source is
// kept verbatim.
type Text string

func (Text) Kind() Kind       { return KindText }
func (v Text) String() string { return string(v) }
func (Text) isValue()         {}

// HTMLFragment is one piece of raw HTML found in Text input.
type HTMLFragment struct {
	// Inline is true for inline raw HTML and false for HTML blocks.
	Inline bool
	HTML   string
}

func (f HTMLFragment) String() string {
	if f.Inline {
		return fmt.Sprintf("inline HTML %q", f.HTML)
	}
	return fmt.Sprintf("HTML block %q", f.HTML)
}

// TextError lists every raw HTML fragment found in rejected Text
// input, in document order.
type TextError struct {
	Fragments []HTMLFragment
}

func (e *TextError) Error() string {
	parts := make([]string, len(e.Fragments))
	for i, fragment := range e.Fragments {
		parts[i] = fragment.String()
	}
	return "disallowed HTML: " + strings.Join(parts, "; ")
}

// The CommonMark parser has no per-call state of its own; Parse
// allocates a fresh context for each document.
var (
	commonMarkInstance goldmark.Markdown
	commonMarkOnce     sync.Once
)

func commonMark() goldmark.Markdown {
	commonMarkOnce.Do(func() {
		commonMarkInstance = goldmark.New()
	})
	return commonMarkInstance
}

// ParseText accepts any CommonMark document free of HTML blocks and
// inline raw HTML.
func ParseText(raw string) (Text, error) {
	if fragments := findHTML([]byte(raw)); len(fragments) > 0 {
		return "", newError(InvalidText, raw, &TextError{Fragments: fragments})
	}
	return Text(raw), nil
}

func findHTML(source []byte) []HTMLFragment {
	document := commonMark().Parser().Parse(text.NewReader(source))

	var fragments []HTMLFragment
	ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.HTMLBlock:
			var builder strings.Builder
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				builder.Write(segment.Value(source))
			}
			if n.HasClosure() {
				builder.Write(n.ClosureLine.Value(source))
			}
			fragments = append(fragments, HTMLFragment{
				HTML: strings.TrimRight(builder.String(), "\n"),
			})
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			var builder strings.Builder
			for i := 0; i < n.Segments.Len(); i++ {
				segment := n.Segments.At(i)
				builder.Write(segment.Value(source))
			}
			fragments = append(fragments, HTMLFragment{
				Inline: true,
				HTML:   builder.String(),
			})
		}
		return ast.WalkContinue, nil
	})
	return fragments
}
