// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"context"
	"testing"
)

func TestToMrkdwn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"strong", "**bold**", "*bold*"},
		{"emphasis", "_it_ and *it*", "_it_ and _it_"},
		{"strikethrough", "~~gone~~", "~gone~"},
		{"code span", "run `make`", "run `make`"},
		{"link", "[docs](https://example.com)", "<https://example.com|docs>"},
		{"url autolink", "<https://example.com>", "<https://example.com>"},
		{"email autolink kept as tag", "ask <bob@example.com>", "ask <bob@example.com>"},
		{"bare email untouched", "ask bob@example.com", "ask bob@example.com"},
		{"heading", "# Title\n\nBody", "*Title*\n\nBody"},
		{"soft break", "one\ntwo", "one two"},
		{"bullets", "- a\n- b", "\u2003• a\n\u2003• b"},
		{"numbers", "3. c\n4. d", "\u20033. c\n\u20034. d"},
		{"blockquote", "> quoted", "> quoted"},
		{"fenced code", "```\nx := 1\n```", "```\nx := 1\n```"},
		{"angle brackets escaped", "a < b", "a &lt; b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMrkdwn(tt.input); got != tt.want {
				t.Errorf("ToMrkdwn(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMarkdownIsEnriched(t *testing.T) {
	lookup := &fakeLookup{users: map[string]string{"bob@example.com": "U7"}}
	document, err := Build(context.Background(), Options{Lookup: lookup}, func(b *Builder) {
		b.Markdown("**Owner:** <bob@example.com>")
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := sectionAt(t, document, 0).Text.Text; got != "*Owner:* <@U7>" {
		t.Errorf("text = %q", got)
	}
}
