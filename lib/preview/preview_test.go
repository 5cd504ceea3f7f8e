// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package preview

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/slackmessage/message"
)

func buildDocument(t *testing.T, body func(*message.Builder)) *message.Document {
	t.Helper()
	lookup := message.UserLookupFunc(func(context.Context, string) (string, error) {
		return "U42", nil
	})
	document, err := message.Build(context.Background(), message.Options{Lookup: lookup}, body)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return document
}

func TestRender(t *testing.T) {
	t.Parallel()

	document := buildDocument(t, func(b *message.Builder) {
		b.Text("*Deploy finished* for <ops@example.com>")
		b.ListItem("Service", "api")
		b.ListItem("Region", "eu-west-1")
		b.ListItem("Duration", "4m")
		b.LinkButton("Logs", "https://logs.example.com", message.StyleDanger)
		b.Divider()
		b.Image("https://img.example.com/graph.png", "latency graph", "Latency")
		b.Context("see " + message.Link("runbook", "https://wiki.example.com/runbook"))
		b.BotName("deploybot")
		b.BotIcon(":rocket:")
	})

	visible := ansi.Strip(Render(document, Options{Width: 72}))
	for _, want := range []string{
		"deploybot",
		":rocket:",
		"notification: *Deploy finished* for <@U42>",
		"Deploy finished for @U42",
		"[ Logs ]",
		"Service",
		"api",
		"Region",
		"eu-west-1",
		"Duration",
		"─────",
		"Latency",
		"[image: latency graph]",
		"https://img.example.com/graph.png",
		"see runbook",
	} {
		if !strings.Contains(visible, want) {
			t.Errorf("preview missing %q:\n%s", want, visible)
		}
	}
	if strings.Contains(visible, "*Deploy finished* for @U42") {
		t.Errorf("bold markers were not rendered:\n%s", visible)
	}
}

func TestRenderWidth(t *testing.T) {
	t.Parallel()

	document := buildDocument(t, func(b *message.Builder) {
		b.Text(strings.Repeat("lorem ipsum dolor sit amet ", 12))
		b.ListItem("Owner", strings.Repeat("long value ", 10))
		b.Divider()
		b.Context(strings.Repeat("context words ", 15))
	})

	const width = 50
	for _, line := range strings.Split(Render(document, Options{Width: width}), "\n") {
		if got := ansi.StringWidth(line); got > width {
			t.Errorf("line is %d cells wide, want at most %d: %q", got, width, ansi.Strip(line))
		}
	}
}

func TestRenderAccessoryImageAndDefaults(t *testing.T) {
	t.Parallel()

	document := buildDocument(t, func(b *message.Builder) {
		b.Section(func(s *message.Section) {
			s.AccessoryImage("https://img.example.com/a.png", "avatar")
		})
	})

	visible := ansi.Strip(Render(document, Options{}))
	if !strings.Contains(visible, "[image: avatar]") {
		t.Errorf("missing accessory image:\n%s", visible)
	}
	if !strings.Contains(visible, "(profile name)") {
		t.Errorf("missing default sender name:\n%s", visible)
	}
}

func TestMrkdwnRender(t *testing.T) {
	t.Parallel()

	renderer := mrkdwnRenderer{theme: DefaultTheme, styles: NewRenderer(io.Discard, ColorAlways)}
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"bold", "*bold* text", "bold text"},
		{"italic", "an _italic_ word", "an italic word"},
		{"strikethrough", "~gone~", "gone"},
		{"code", "run `make`", "run make"},
		{"fenced code", "```\ncode\n```", "\ncode\n"},
		{"labelled link", "<https://x.example|docs>", "docs"},
		{"bare link", "<https://x.example>", "https://x.example"},
		{"mailto link", "<mailto:a@x.example>", "a@x.example"},
		{"user mention", "hi <@U42>", "hi @U42"},
		{"channel mention", "<#C1|general>", "#general"},
		{"special mention", "<!here>", "@here"},
		{"entities", "a &lt;b&gt; &amp; c", "a <b> & c"},
		{"inner asterisk untouched", "2*3*4", "2*3*4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ansi.Strip(renderer.render(tt.input)); got != tt.want {
				t.Errorf("render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderColorModes(t *testing.T) {
	t.Parallel()

	document := buildDocument(t, func(b *message.Builder) {
		b.Text("*bold* and <https://x.example|a link>")
	})

	plain := Render(document, Options{Renderer: NewRenderer(io.Discard, ColorNever)})
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("ColorNever output contains escape sequences: %q", plain)
	}
	if !strings.Contains(plain, "bold and a link") {
		t.Errorf("ColorNever output = %q", plain)
	}

	styled := Render(document, Options{Renderer: NewRenderer(io.Discard, ColorAlways)})
	if !strings.Contains(styled, "\x1b[") {
		t.Errorf("ColorAlways output has no escape sequences: %q", styled)
	}
	if !strings.Contains(ansi.Strip(styled), "bold and a link") {
		t.Errorf("ColorAlways output = %q", ansi.Strip(styled))
	}
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColorMode(%q) = %q, %v", tt.input, got, err)
		}
	}
}
