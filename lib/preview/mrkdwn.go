// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package preview

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// angleTokenPattern matches <...> tokens: links, mentions, and
	// bare URLs or emails.
	angleTokenPattern = regexp.MustCompile(`<([^<>|]+)(?:\|([^<>]+))?>`)

	boldPattern          = regexp.MustCompile(`(^|[\s(])\*([^*\n]+)\*`)
	italicPattern        = regexp.MustCompile(`(^|[\s(])_([^_\n]+)_`)
	strikethroughPattern = regexp.MustCompile(`(^|[\s(])~([^~\n]+)~`)
	codePattern          = regexp.MustCompile("`([^`\n]+)`")
)

// mrkdwnRenderer styles mrkdwn text for the terminal.
type mrkdwnRenderer struct {
	theme  Theme
	styles *lipgloss.Renderer
}

// render converts mrkdwn markup to styled text. Fenced code blocks are
// left as they are.
func (renderer mrkdwnRenderer) render(text string) string {
	text = strings.ReplaceAll(text, "```", "")

	text = codePattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := match[1 : len(match)-1]
		return renderer.styles.NewStyle().Foreground(renderer.theme.CodeForeground).Render(inner)
	})
	text = angleTokenPattern.ReplaceAllStringFunc(text, renderer.angleToken)
	text = replaceDelimited(text, boldPattern, renderer.styles.NewStyle().Bold(true))
	text = replaceDelimited(text, italicPattern, renderer.styles.NewStyle().Italic(true))
	text = replaceDelimited(text, strikethroughPattern, renderer.styles.NewStyle().Strikethrough(true))

	return unescape(text)
}

// angleToken renders <@U123>, <#C123>, <url|label>, and <url>.
func (renderer mrkdwnRenderer) angleToken(match string) string {
	groups := angleTokenPattern.FindStringSubmatch(match)
	target, label := groups[1], groups[2]

	mention := renderer.styles.NewStyle().Foreground(renderer.theme.MentionForeground).Bold(true)
	link := renderer.styles.NewStyle().Foreground(renderer.theme.LinkForeground).Underline(true)

	switch {
	case strings.HasPrefix(target, "@"):
		return mention.Render(target)
	case strings.HasPrefix(target, "#"):
		if label != "" {
			return mention.Render("#" + label)
		}
		return mention.Render(target)
	case strings.HasPrefix(target, "!"):
		return mention.Render("@" + strings.TrimPrefix(target, "!"))
	case label != "":
		return link.Render(label)
	default:
		return link.Render(strings.TrimPrefix(target, "mailto:"))
	}
}

func replaceDelimited(text string, pattern *regexp.Regexp, style lipgloss.Style) string {
	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := pattern.FindStringSubmatch(match)
		return groups[1] + style.Render(groups[2])
	})
}

// unescape reverses the entity escaping the Web API requires for <, >,
// and &.
func unescape(text string) string {
	return strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&").Replace(text)
}
