// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"strconv"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// The parser is built once. Linkify stays disabled: bare email addresses
// remain bare and only <addr> autolinks become mention tags.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.TaskList,
			),
		)
	})
	return markdownParserInstance
}

// ToMrkdwn converts CommonMark to Slack mrkdwn. Strong text becomes
// *bold*, emphasis _italic_, strikethrough ~struck~, links <url|label>,
// headings bold lines, and list items em-space indented bullets or
// numbers. Email autolinks such as <alice@example.com> are kept in tag
// form so enrichment can turn them into mentions.
func ToMrkdwn(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	converter := &mrkdwnConverter{source: source}
	return strings.TrimRight(strings.Join(converter.blocks(document), "\n\n"), "\n")
}

type mrkdwnConverter struct {
	source []byte
}

// blocks converts each block-level child of parent to a string.
func (converter *mrkdwnConverter) blocks(parent ast.Node) []string {
	var result []string
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if block := converter.block(child); block != "" {
			result = append(result, block)
		}
	}
	return result
}

func (converter *mrkdwnConverter) block(node ast.Node) string {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		return converter.inline(node)

	case ast.KindHeading:
		content := converter.inline(node)
		if content == "" {
			return ""
		}
		return "*" + content + "*"

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		return "```\n" + strings.TrimRight(converter.lines(node), "\n") + "\n```"

	case ast.KindBlockquote:
		inner := strings.Join(converter.blocks(node), "\n")
		lines := strings.Split(inner, "\n")
		for index, line := range lines {
			lines[index] = "> " + line
		}
		return strings.Join(lines, "\n")

	case ast.KindList:
		return converter.list(node.(*ast.List))

	case ast.KindThematicBreak:
		return strings.Repeat("─", 20)

	case ast.KindHTMLBlock:
		return strings.TrimRight(converter.lines(node), "\n")

	default:
		return strings.Join(converter.blocks(node), "\n")
	}
}

func (converter *mrkdwnConverter) list(list *ast.List) string {
	number := list.Start
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		lines := strings.Split(strings.Join(converter.blocks(item), "\n"), "\n")
		for index, line := range lines {
			if index == 0 {
				lines[index] = emSpace + marker + line
			} else {
				lines[index] = emSpace + line
			}
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return strings.Join(items, "\n")
}

// lines concatenates the raw source lines of a block node.
func (converter *mrkdwnConverter) lines(node ast.Node) string {
	var content strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		content.Write(segment.Value(converter.source))
	}
	return content.String()
}

// inline converts the inline children of node.
func (converter *mrkdwnConverter) inline(node ast.Node) string {
	var output strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		converter.inlineNode(&output, child)
	}
	return output.String()
}

func (converter *mrkdwnConverter) inlineNode(output *strings.Builder, node ast.Node) {
	switch node.Kind() {
	case ast.KindText:
		textNode := node.(*ast.Text)
		output.WriteString(escapeMrkdwn(string(textNode.Segment.Value(converter.source))))
		if textNode.HardLineBreak() {
			output.WriteString("\n")
		} else if textNode.SoftLineBreak() {
			output.WriteString(" ")
		}

	case ast.KindString:
		output.WriteString(escapeMrkdwn(string(node.(*ast.String).Value)))

	case ast.KindEmphasis:
		marker := "_"
		if node.(*ast.Emphasis).Level >= 2 {
			marker = "*"
		}
		output.WriteString(marker + converter.inline(node) + marker)

	case extast.KindStrikethrough:
		output.WriteString("~" + converter.inline(node) + "~")

	case ast.KindCodeSpan:
		var code strings.Builder
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				code.Write(textNode.Segment.Value(converter.source))
			} else if stringNode, ok := child.(*ast.String); ok {
				code.Write(stringNode.Value)
			}
		}
		output.WriteString("`" + code.String() + "`")

	case ast.KindLink:
		link := node.(*ast.Link)
		destination := string(link.Destination)
		label := converter.inline(node)
		if label == "" || label == destination {
			output.WriteString("<" + destination + ">")
		} else {
			output.WriteString(Link(label, destination))
		}

	case ast.KindAutoLink:
		autoLink := node.(*ast.AutoLink)
		if autoLink.AutoLinkType == ast.AutoLinkEmail {
			output.WriteString("<" + string(autoLink.Label(converter.source)) + ">")
		} else {
			output.WriteString("<" + string(autoLink.URL(converter.source)) + ">")
		}

	case ast.KindImage:
		image := node.(*ast.Image)
		destination := string(image.Destination)
		if alt := converter.inline(node); alt != "" {
			output.WriteString(Link(alt, destination))
		} else {
			output.WriteString("<" + destination + ">")
		}

	case ast.KindRawHTML:
		raw := node.(*ast.RawHTML)
		for index := 0; index < raw.Segments.Len(); index++ {
			segment := raw.Segments.At(index)
			output.Write(segment.Value(converter.source))
		}

	case extast.KindTaskCheckBox:
		if node.(*extast.TaskCheckBox).IsChecked {
			output.WriteString("☑ ")
		} else {
			output.WriteString("☐ ")
		}

	default:
		output.WriteString(converter.inline(node))
	}
}

// escapeMrkdwn escapes the characters Slack treats as control sequences
// in literal text.
func escapeMrkdwn(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	return strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(s)
}
