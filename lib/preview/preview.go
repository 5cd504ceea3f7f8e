// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/slack-go/slack"

	"github.com/bureau-foundation/slackmessage/message"
)

// DefaultWidth is used when Options.Width is not positive.
const DefaultWidth = 80

// Options configures Render.
type Options struct {
	// Width is the total output width in cells, including the border.
	Width int

	// Theme defaults to DefaultTheme when its NormalText is empty.
	Theme Theme

	// Renderer picks the color profile. Nil means
	// lipgloss.DefaultRenderer(), which inspects stdout.
	Renderer *lipgloss.Renderer
}

// Render returns a terminal rendering of document.
func Render(document *message.Document, options Options) string {
	width := options.Width
	if width <= 0 {
		width = DefaultWidth
	}
	theme := options.Theme
	if theme.NormalText == "" {
		theme = DefaultTheme
	}

	styles := options.Renderer
	if styles == nil {
		styles = lipgloss.DefaultRenderer()
	}

	renderer := &blockRenderer{
		theme:  theme,
		styles: styles,
		mrkdwn: mrkdwnRenderer{theme: theme, styles: styles},
		// Border plus one column of padding on each side.
		width: max(width-4, 10),
	}

	var parts []string
	parts = append(parts, renderer.header(document))
	for _, block := range document.Blocks {
		if rendered := renderer.block(block); rendered != "" {
			parts = append(parts, rendered)
		}
	}

	body := strings.Join(parts, "\n\n")
	return styles.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Width(renderer.width + 2).
		Render(body)
}

type blockRenderer struct {
	theme  Theme
	styles *lipgloss.Renderer
	mrkdwn mrkdwnRenderer
	width  int
}

// header shows the sender identity and the notification text.
func (renderer *blockRenderer) header(document *message.Document) string {
	name := document.BotName
	if name == "" {
		name = "(profile name)"
	}
	nameStyle := renderer.styles.NewStyle().Foreground(renderer.theme.HeaderForeground).Bold(true)
	faint := renderer.styles.NewStyle().Foreground(renderer.theme.FaintText)

	line := nameStyle.Render(name)
	if document.BotIcon != "" {
		line += " " + faint.Render(document.BotIcon)
	}
	notification := ansi.Truncate("notification: "+document.NotificationText, renderer.width, "…")
	return line + "\n" + faint.Render(notification)
}

func (renderer *blockRenderer) block(block slack.Block) string {
	switch block := block.(type) {
	case *slack.SectionBlock:
		return renderer.section(block)
	case *slack.DividerBlock:
		return renderer.styles.NewStyle().Foreground(renderer.theme.BorderColor).Render(strings.Repeat("─", renderer.width))
	case *slack.ImageBlock:
		return renderer.image(block)
	case *slack.ContextBlock:
		return renderer.context(block)
	default:
		return renderer.styles.NewStyle().Foreground(renderer.theme.FaintText).
			Render(fmt.Sprintf("[%s block]", block.BlockType()))
	}
}

func (renderer *blockRenderer) section(section *slack.SectionBlock) string {
	var lines []string
	textWidth := renderer.width

	var accessory string
	if section.Accessory != nil {
		accessory = renderer.accessory(section.Accessory)
		textWidth = max(renderer.width-ansi.StringWidth(accessory)-2, 10)
	}

	if section.Text != nil && section.Text.Text != "" {
		text := renderer.wrap(renderer.mrkdwn.render(section.Text.Text), textWidth)
		if accessory != "" {
			text = lipgloss.JoinHorizontal(lipgloss.Top,
				renderer.styles.NewStyle().Width(textWidth+2).Render(text),
				accessory)
			accessory = ""
		}
		lines = append(lines, text)
	}

	if len(section.Fields) > 0 {
		lines = append(lines, renderer.fields(section.Fields))
	}
	if accessory != "" {
		lines = append(lines, accessory)
	}
	return strings.Join(lines, "\n")
}

// fields lays out section fields two to a row, as Slack does.
func (renderer *blockRenderer) fields(fields []*slack.TextBlockObject) string {
	columnWidth := max((renderer.width-2)/2, 5)
	cell := renderer.styles.NewStyle().Width(columnWidth)

	var rows []string
	for index := 0; index < len(fields); index += 2 {
		left := renderer.wrap(renderer.mrkdwn.render(fields[index].Text), columnWidth)
		right := ""
		if index+1 < len(fields) {
			right = renderer.wrap(renderer.mrkdwn.render(fields[index+1].Text), columnWidth)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			cell.Render(left), "  ", cell.Render(right)))
	}
	return strings.Join(rows, "\n")
}

func (renderer *blockRenderer) accessory(accessory *slack.Accessory) string {
	switch {
	case accessory.ButtonElement != nil:
		button := accessory.ButtonElement
		color := renderer.theme.ButtonDefault
		switch button.Style {
		case slack.StylePrimary:
			color = renderer.theme.ButtonPrimary
		case slack.StyleDanger:
			color = renderer.theme.ButtonDanger
		}
		label := ""
		if button.Text != nil {
			label = button.Text.Text
		}
		return renderer.styles.NewStyle().Foreground(color).Bold(true).Render("[ " + label + " ]")
	case accessory.ImageElement != nil:
		return renderer.styles.NewStyle().Foreground(renderer.theme.FaintText).
			Render("[image: " + accessory.ImageElement.AltText + "]")
	default:
		return ""
	}
}

func (renderer *blockRenderer) image(image *slack.ImageBlock) string {
	faint := renderer.styles.NewStyle().Foreground(renderer.theme.FaintText)
	var lines []string
	if image.Title != nil && image.Title.Text != "" {
		lines = append(lines, renderer.styles.NewStyle().Bold(true).Render(image.Title.Text))
	}
	lines = append(lines, faint.Render("[image: "+image.AltText+"]"))
	lines = append(lines, faint.Render(ansi.Truncate(image.ImageURL, renderer.width, "…")))
	return strings.Join(lines, "\n")
}

func (renderer *blockRenderer) context(context *slack.ContextBlock) string {
	var texts []string
	for _, element := range context.ContextElements.Elements {
		switch element := element.(type) {
		case *slack.TextBlockObject:
			texts = append(texts, renderer.mrkdwn.render(element.Text))
		case *slack.ImageBlockElement:
			texts = append(texts, "["+element.AltText+"]")
		}
	}
	faint := renderer.styles.NewStyle().Foreground(renderer.theme.FaintText)
	return faint.Render(renderer.wrap(strings.Join(texts, "  "), renderer.width))
}

// wrap wraps styled text to width cells, preserving escape sequences.
func (renderer *blockRenderer) wrap(text string, width int) string {
	return ansi.Wrap(text, width, " ,.;-+|")
}
