// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"encoding/json"

	"github.com/slack-go/slack"
)

// Document is a rendered message: Block Kit blocks plus the metadata the
// sender needs. Documents are immutable once rendered.
type Document struct {
	// Blocks in render order.
	Blocks []slack.Block

	// NotificationText is the fallback shown in notifications: the
	// explicit NotificationText override when one was given, otherwise
	// the text of the first section that has any.
	NotificationText string

	// BotName and BotIcon override the sending profile's name and icon.
	BotName string
	BotIcon string
}

// HasOverrides reports whether the document overrides the sender's name
// or icon.
func (d *Document) HasOverrides() bool {
	return d.BotName != "" || d.BotIcon != ""
}

// BlocksJSON returns the blocks as a JSON array.
func (d *Document) BlocksJSON() ([]byte, error) {
	return json.Marshal(d.Blocks)
}

// BlocksIndentedJSON returns the blocks as indented JSON for diagnostics.
func (d *Document) BlocksIndentedJSON() ([]byte, error) {
	return json.MarshalIndent(d.Blocks, "", "  ")
}
