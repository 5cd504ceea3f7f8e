// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/slackmessage/message"
)

// Operation is one builder call.
type Operation struct {
	// Op names the operation, e.g. "text" or "list_item".
	Op string `json:"op"`

	// Text is the argument of single-string operations: text, markdown,
	// context, bot_name, bot_icon, and notification_text.
	Text    string   `json:"text,omitempty"`
	Title   string   `json:"title,omitempty"`
	Value   string   `json:"value,omitempty"`
	Label   string   `json:"label,omitempty"`
	URL     string   `json:"url,omitempty"`
	AltText string   `json:"alt_text,omitempty"`
	Style   string   `json:"style,omitempty"`
	Items   []string `json:"items,omitempty"`

	// Ops holds the body of a "section" operation.
	Ops []Operation `json:"ops,omitempty"`

	// Args are passed to extension operations.
	Args []string `json:"args,omitempty"`
}

// Script is a parsed message script.
type Script struct {
	Operations []Operation
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the operation list.
func Parse(data []byte) (*Script, error) {
	stripped := jsonc.ToJSON(data)

	var operations []Operation
	if err := json.Unmarshal(stripped, &operations); err != nil {
		return nil, fmt.Errorf("parsing message script: %w", err)
	}
	return &Script{Operations: operations}, nil
}

// ReadFile reads and parses a JSONC script from disk.
func ReadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	parsed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

// NameFromPath returns the script name for a path: the base name without
// its extension. "alerts/deploy-finished.jsonc" is "deploy-finished".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Apply validates the script and runs its operations against builder in
// order. A script with structural problems is rejected before any
// operation runs; failures of individual operations are recorded on the
// builder and surface from Render.
func (s *Script) Apply(builder *message.Builder) error {
	if issues := Validate(s); len(issues) > 0 {
		return fmt.Errorf("invalid message script: %s", strings.Join(issues, "; "))
	}
	for _, operation := range s.Operations {
		if builder.Err() != nil {
			break
		}
		applyTopLevel(builder, operation)
	}
	return nil
}

// Build runs the script against a new builder and renders the result.
func (s *Script) Build(ctx context.Context, options message.Options) (*message.Document, error) {
	builder := message.NewBuilder(ctx, options)
	if err := s.Apply(builder); err != nil {
		return nil, err
	}
	return builder.Render()
}

func applyTopLevel(builder *message.Builder, operation Operation) {
	switch operation.Op {
	case "section":
		builder.Section(func(section *message.Section) {
			for _, inner := range operation.Ops {
				if builder.Err() != nil {
					return
				}
				applySection(section, inner)
			}
		})
	case "divider":
		builder.Divider()
	case "image":
		builder.Image(operation.URL, operation.AltText, operation.Title)
	case "context":
		builder.Context(operation.Text)
	case "bot_name":
		builder.BotName(operation.Text)
	case "bot_icon":
		builder.BotIcon(operation.Text)
	case "notification_text":
		builder.NotificationText(operation.Text)
	default:
		if !applySection(builder, operation) {
			builder.Call(operation.Op, operation.Args...)
		}
	}
}

// sectionOperations is implemented by both *message.Section and the
// builder's implicit section.
type sectionOperations interface {
	Text(msg string)
	Markdown(md string)
	BlankLine()
	UL(items []string)
	OL(items []string)
	ListItem(title, value string)
	LinkButton(label, target string, style message.ButtonStyle)
	AccessoryImage(url, altText string)
}

// applySection runs a section-level operation and reports whether op was
// one.
func applySection(section sectionOperations, operation Operation) bool {
	switch operation.Op {
	case "text":
		section.Text(operation.Text)
	case "markdown":
		section.Markdown(operation.Text)
	case "blank_line":
		section.BlankLine()
	case "ul":
		section.UL(operation.Items)
	case "ol":
		section.OL(operation.Items)
	case "list_item":
		section.ListItem(operation.Title, operation.Value)
	case "link_button":
		section.LinkButton(operation.Label, operation.URL, message.ButtonStyle(operation.Style))
	case "accessory_image":
		section.AccessoryImage(operation.URL, operation.AltText)
	default:
		return false
	}
	return true
}
