// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package preview renders a message.Document for a terminal, so that a
// message can be checked before it is sent. The rendering approximates
// the Slack client: sections show their mrkdwn text with bold, italic,
// strikethrough, and code styling, fields are laid out in two columns,
// and accessories appear as bracketed buttons or image placeholders.
//
// Output is styled with lipgloss and wraps to a fixed width. Colors are
// only emitted when the output profile supports them.
package preview
