// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"strings"
	"testing"
)

func TestParseText(t *testing.T) {
	for _, raw := range []string{
		"foo *bar*",
		"",
		"# Heading\n\nA paragraph with `<code>` in backticks.\n",
		"    <div>indented code, not HTML</div>\n",
		"```\n<script>fenced</script>\n```\n",
		"Less than: 1 < 2 and a [link](https://example.org).",
		"Escaped \\<b\\> tag.",
	} {
		got, err := ParseText(raw)
		if err != nil {
			t.Errorf("ParseText(%q): %v", raw, err)
			continue
		}
		if got.String() != raw {
			t.Errorf("ParseText(%q) = %q", raw, got.String())
		}
	}
}

func TestParseTextInlineHTML(t *testing.T) {
	_, err := ParseText("<i>oo</i>")
	var valueErr *Error
	if !errors.As(err, &valueErr) || valueErr.Code != InvalidText {
		t.Fatalf("ParseText = %v, want InvalidText", err)
	}
	var textErr *TextError
	if !errors.As(err, &textErr) {
		t.Fatalf("error does not carry a TextError: %v", err)
	}
	if len(textErr.Fragments) != 2 {
		t.Fatalf("found %d fragments, want 2: %v", len(textErr.Fragments), textErr.Fragments)
	}
	want := []HTMLFragment{{Inline: true, HTML: "<i>"}, {Inline: true, HTML: "</i>"}}
	for i, fragment := range textErr.Fragments {
		if fragment != want[i] {
			t.Errorf("fragment %d = %+v, want %+v", i, fragment, want[i])
		}
	}
	if !strings.HasPrefix(err.Error(), "invalid text: disallowed HTML") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseTextHTMLBlock(t *testing.T) {
	_, err := ParseText("Intro.\n\n<div>\nhello\n</div>\n\nOutro with <b>bold</b>.\n")
	var textErr *TextError
	if !errors.As(err, &textErr) {
		t.Fatalf("ParseText = %v, want TextError", err)
	}
	if len(textErr.Fragments) != 3 {
		t.Fatalf("found %d fragments, want 3: %v", len(textErr.Fragments), textErr.Fragments)
	}
	block := textErr.Fragments[0]
	if block.Inline {
		t.Error("first fragment should be an HTML block")
	}
	if !strings.HasPrefix(block.HTML, "<div>") {
		t.Errorf("block HTML = %q", block.HTML)
	}
	if !textErr.Fragments[1].Inline || textErr.Fragments[1].HTML != "<b>" {
		t.Errorf("fragment 1 = %+v", textErr.Fragments[1])
	}
}

func TestParseTextComment(t *testing.T) {
	_, err := ParseText("<!-- hidden -->\n")
	var textErr *TextError
	if !errors.As(err, &textErr) {
		t.Fatalf("ParseText = %v, want TextError", err)
	}
	if len(textErr.Fragments) != 1 || textErr.Fragments[0].HTML != "<!-- hidden -->" {
		t.Errorf("fragments = %+v", textErr.Fragments)
	}
}
