// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"strconv"
	"strings"

	"github.com/slack-go/slack"
)

// emSpace indents list items and forms blank lines. Slack collapses
// leading ASCII spaces but keeps U+2003.
const emSpace = "\u2003"

// field is one list item: a bold title and an enriched value.
type field struct {
	title string
	value string
}

// padField fills the second column when a list has an odd length.
var padField = field{title: " ", value: " "}

// pairFields lays fields out as Slack's two-column field grid. An odd
// count is padded with a single blank field, then each pair of fields
// (A, B) becomes four cells in the order A.title, B.title, A.value,
// B.value. The result always has ceil(n/2)*4 cells.
func pairFields(fields []field) []*slack.TextBlockObject {
	if len(fields) == 0 {
		return nil
	}
	padded := fields
	if len(padded)%2 == 1 {
		padded = make([]field, len(fields), len(fields)+1)
		copy(padded, fields)
		padded = append(padded, padField)
	}

	cells := make([]*slack.TextBlockObject, 0, len(padded)*2)
	for index := 0; index < len(padded); index += 2 {
		left, right := padded[index], padded[index+1]
		cells = append(cells,
			markdownText(left.title),
			markdownText(right.title),
			markdownText(left.value),
			markdownText(right.value),
		)
	}
	return cells
}

// bulletList formats items as an em-space indented bulleted list.
func bulletList(items []string) string {
	lines := make([]string, len(items))
	for index, item := range items {
		lines[index] = emSpace + "• " + item
	}
	return strings.Join(lines, "\n")
}

// numberedList formats items as an em-space indented list numbered from 1.
func numberedList(items []string) string {
	lines := make([]string, len(items))
	for index, item := range items {
		lines[index] = emSpace + strconv.Itoa(index+1) + ". " + item
	}
	return strings.Join(lines, "\n")
}

// Link formats a mrkdwn link to target labelled label.
func Link(label, target string) string {
	return "<" + target + "|" + label + ">"
}
