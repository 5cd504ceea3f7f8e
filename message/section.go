// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/slack-go/slack"
)

// ButtonStyle is the color of a link button.
type ButtonStyle string

const (
	// StyleDefault renders a plain button; no style is sent.
	StyleDefault ButtonStyle = "default"
	// StylePrimary renders a green button.
	StylePrimary ButtonStyle = "primary"
	// StyleDanger renders a red button.
	StyleDanger ButtonStyle = "danger"
)

var linkPattern = regexp.MustCompile(`(^|\s)((https?://)?[\w-]+(\.[\w-]+)+\.?(:\d+)?(/\S*)?)`)

// Section accumulates the content of one section block: text lines, at
// most one accessory, and a list of fields. Methods record failures on
// the owning Builder.
type Section struct {
	builder *Builder

	lines     []string
	accessory *slack.Accessory
	fields    []field

	added bool
}

func newSection(builder *Builder) *Section {
	return &Section{builder: builder}
}

// ready reports whether op may change this section. A section is closed
// once it has been added to the message, and the implicit section can't
// change while an explicit section's body is running.
func (s *Section) ready(op string) bool {
	if !s.builder.ready(op) {
		return false
	}
	if s.added {
		s.builder.fail(constructionErrorf(op, "section has already been added to the message"))
		return false
	}
	if open := s.builder.open; open != nil && open != s {
		s.builder.fail(constructionErrorf(op, "can't change another section inside a section"))
		return false
	}
	return true
}

// Text appends msg to the section's text, separated from earlier text by
// a newline. Tagged email addresses are resolved to mentions. Empty text
// is a construction error.
func (s *Section) Text(msg string) {
	if !s.ready("text") {
		return
	}
	if msg == "" {
		s.builder.fail(constructionErrorf("text", "text must not be empty"))
		return
	}
	s.lines = append(s.lines, s.builder.enrich(msg))
}

// Markdown converts CommonMark to mrkdwn and appends it like Text.
func (s *Section) Markdown(md string) {
	if !s.ready("markdown") {
		return
	}
	converted := ToMrkdwn(md)
	if converted == "" {
		s.builder.fail(constructionErrorf("markdown", "markdown produced no text"))
		return
	}
	s.lines = append(s.lines, s.builder.enrich(converted))
}

// BlankLine appends a visually empty line.
func (s *Section) BlankLine() {
	if !s.ready("blank_line") {
		return
	}
	s.lines = append(s.lines, emSpace)
}

// UL appends items as a bulleted list.
func (s *Section) UL(items []string) {
	s.list("ul", items, bulletList)
}

// OL appends items as a numbered list.
func (s *Section) OL(items []string) {
	s.list("ol", items, numberedList)
}

func (s *Section) list(op string, items []string, format func([]string) string) {
	if !s.ready(op) {
		return
	}
	if len(items) == 0 {
		s.builder.fail(constructionErrorf(op, "list must have at least one item"))
		return
	}
	s.lines = append(s.lines, s.builder.enrich(format(items)))
}

// ListItem adds a field to the section's two-column grid. The title is
// shown in bold and may be empty; the value is enriched and required.
func (s *Section) ListItem(title, value string) {
	if !s.ready("list_item") {
		return
	}
	if value == "" {
		s.builder.fail(constructionErrorf("list_item", "can't create a list item for %q without a value", title))
		return
	}
	item := field{title: padField.title, value: s.builder.enrich(value)}
	if title != "" {
		item.title = "*" + title + "*"
	}
	s.fields = append(s.fields, item)
}

// LinkButton sets the section accessory to a button opening target. An
// empty style means StylePrimary.
func (s *Section) LinkButton(label, target string, style ButtonStyle) {
	if !s.ready("link_button") {
		return
	}
	if label == "" || target == "" {
		s.builder.fail(constructionErrorf("link_button", "link button needs a label and a URL"))
		return
	}
	if !linkPattern.MatchString(target) {
		s.builder.warn(WarnSuspiciousURL, s.index(),
			fmt.Sprintf("link button URL %q does not look like a URL", target))
	}

	button := slack.NewButtonBlockElement("", "", slack.NewTextBlockObject(slack.PlainTextType, label, true, false))
	button.URL = target
	switch style {
	case StylePrimary, "":
		button.Style = slack.StylePrimary
	case StyleDanger:
		button.Style = slack.StyleDanger
	case StyleDefault:
		button.Style = slack.StyleDefault
	default:
		s.builder.fail(constructionErrorf("link_button", "unknown button style %q", style))
		return
	}
	s.setAccessory(slack.NewAccessory(button))
}

// AccessoryImage sets the section accessory to an image thumbnail.
func (s *Section) AccessoryImage(url, altText string) {
	if !s.ready("accessory_image") {
		return
	}
	if url == "" {
		s.builder.fail(constructionErrorf("accessory_image", "image URL must not be empty"))
		return
	}
	s.setAccessory(slack.NewAccessory(slack.NewImageBlockElement(url, altText)))
}

func (s *Section) setAccessory(accessory *slack.Accessory) {
	if s.accessory != nil {
		s.builder.warn(WarnAccessoryOverwritten, s.index(),
			"section already has an accessory; replacing it")
	}
	s.accessory = accessory
}

// HasContent reports whether the section has text, an accessory, or
// fields.
func (s *Section) HasContent() bool {
	return len(s.lines) > 0 || s.accessory != nil || len(s.fields) > 0
}

// text returns the section's accumulated raw text.
func (s *Section) text() string {
	return strings.Join(s.lines, "\n")
}

// index is the block position this section will take when pushed.
func (s *Section) index() int {
	return len(s.builder.blocks)
}

func (s *Section) render() *slack.SectionBlock {
	var textObject *slack.TextBlockObject
	if len(s.lines) > 0 {
		textObject = markdownText(s.text())
	}
	return slack.NewSectionBlock(textObject, pairFields(s.fields), s.accessory)
}

// markdownText builds a mrkdwn text object. Constructed directly so that
// no emoji flag is serialized, which Slack rejects on mrkdwn.
func markdownText(text string) *slack.TextBlockObject {
	return &slack.TextBlockObject{Type: slack.MarkdownType, Text: text}
}
