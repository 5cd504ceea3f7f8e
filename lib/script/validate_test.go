// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		operations     []Operation
		expectedIssues int
		wantSubstrings []string
	}{
		{
			name:       "valid flat script",
			operations: []Operation{{Op: "text", Text: "hi"}, {Op: "divider"}, {Op: "ul", Items: []string{"a"}}},
		},
		{
			name: "valid section",
			operations: []Operation{{Op: "section", Ops: []Operation{
				{Op: "list_item", Title: "a", Value: "b"},
				{Op: "accessory_image", URL: "https://x.example/a.png", AltText: "a"},
			}}},
		},
		{
			name:       "extension operation",
			operations: []Operation{{Op: "status.badge", Args: []string{"green"}}},
		},
		{
			name:           "empty script",
			expectedIssues: 1,
			wantSubstrings: []string{"no operations"},
		},
		{
			name:           "missing op",
			operations:     []Operation{{Text: "hi"}},
			expectedIssues: 1,
			wantSubstrings: []string{"ops[0]: op is required"},
		},
		{
			name:           "invalid extension name",
			operations:     []Operation{{Op: "Not Valid"}},
			expectedIssues: 1,
			wantSubstrings: []string{"invalid operation name"},
		},
		{
			name:           "missing required fields",
			operations:     []Operation{{Op: "list_item"}, {Op: "image", URL: "https://x.example"}},
			expectedIssues: 2,
			wantSubstrings: []string{"ops[0] (list_item): value is required", "ops[1] (image): alt_text is required"},
		},
		{
			name:       "list item without a title",
			operations: []Operation{{Op: "list_item", Value: "api"}},
		},
		{
			name:           "empty list",
			operations:     []Operation{{Op: "ol"}},
			expectedIssues: 1,
			wantSubstrings: []string{"items must not be empty"},
		},
		{
			name:           "empty section",
			operations:     []Operation{{Op: "section"}},
			expectedIssues: 1,
			wantSubstrings: []string{"section has no operations"},
		},
		{
			name: "top-level operation in section",
			operations: []Operation{{Op: "section", Ops: []Operation{
				{Op: "text", Text: "ok"},
				{Op: "context", Text: "no"},
				{Op: "status"},
			}}},
			expectedIssues: 2,
			wantSubstrings: []string{"ops[0] (section).ops[1] (context): not allowed inside a section", "unknown section operation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := Validate(&Script{Operations: tt.operations})
			if len(issues) != tt.expectedIssues {
				t.Fatalf("got %d issues, want %d: %v", len(issues), tt.expectedIssues, issues)
			}
			joined := strings.Join(issues, "\n")
			for _, want := range tt.wantSubstrings {
				if !strings.Contains(joined, want) {
					t.Errorf("issues missing %q:\n%s", want, joined)
				}
			}
		})
	}
}
