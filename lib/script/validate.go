// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"
	"regexp"
)

// extensionNamePattern matches names that may be dispatched to builder
// extensions.
var extensionNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_.-]*$`)

// topLevelOnly are operations that cannot appear inside a section.
var topLevelOnly = map[string]bool{
	"section":           true,
	"divider":           true,
	"image":             true,
	"context":           true,
	"bot_name":          true,
	"bot_icon":          true,
	"notification_text": true,
}

// sectionLevel are operations that apply to a section.
var sectionLevel = map[string]bool{
	"text":            true,
	"markdown":        true,
	"blank_line":      true,
	"ul":              true,
	"ol":              true,
	"list_item":       true,
	"link_button":     true,
	"accessory_image": true,
}

// Validate checks a script for structural problems and returns a
// description of each one. An empty result means the script is
// well-formed. Values the builder checks itself (button styles, icon
// syntax) are left to the builder.
func Validate(s *Script) []string {
	var issues []string
	if len(s.Operations) == 0 {
		issues = append(issues, "script has no operations")
	}
	for index, operation := range s.Operations {
		issues = append(issues, validateOperation(operation, fmt.Sprintf("ops[%d]", index), false)...)
	}
	return issues
}

func validateOperation(operation Operation, prefix string, inSection bool) []string {
	var issues []string
	if operation.Op == "" {
		return []string{prefix + ": op is required"}
	}
	prefix = fmt.Sprintf("%s (%s)", prefix, operation.Op)

	switch {
	case inSection && topLevelOnly[operation.Op]:
		return []string{prefix + ": not allowed inside a section"}
	case inSection && !sectionLevel[operation.Op]:
		return []string{prefix + ": unknown section operation"}
	case !topLevelOnly[operation.Op] && !sectionLevel[operation.Op]:
		if !extensionNamePattern.MatchString(operation.Op) {
			issues = append(issues, prefix+": invalid operation name")
		}
		return issues
	}

	require := func(field, value string) {
		if value == "" {
			issues = append(issues, fmt.Sprintf("%s: %s is required", prefix, field))
		}
	}

	switch operation.Op {
	case "section":
		if len(operation.Ops) == 0 {
			issues = append(issues, prefix+": section has no operations")
		}
		for index, inner := range operation.Ops {
			issues = append(issues, validateOperation(inner, fmt.Sprintf("%s.ops[%d]", prefix, index), true)...)
		}
	case "text", "markdown", "context", "bot_name", "bot_icon", "notification_text":
		require("text", operation.Text)
	case "image":
		require("url", operation.URL)
		require("alt_text", operation.AltText)
	case "accessory_image":
		require("url", operation.URL)
		require("alt_text", operation.AltText)
	case "link_button":
		require("label", operation.Label)
		require("url", operation.URL)
	case "list_item":
		require("value", operation.Value)
	case "ul", "ol":
		if len(operation.Items) == 0 {
			issues = append(issues, prefix+": items must not be empty")
		}
	}
	return issues
}
