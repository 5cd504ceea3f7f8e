// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	variables := map[string]string{"SERVICE": "api", "OWNER": "ops@example.com"}
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"no references", "plain", "plain", ""},
		{"one reference", "deploy ${SERVICE}", "deploy api", ""},
		{"repeated", "${SERVICE}/${SERVICE}", "api/api", ""},
		{"bare dollar untouched", "$SERVICE costs $5", "$SERVICE costs $5", ""},
		{"unresolved", "${SERVICE} by ${WHO} on ${WHEN}", "", "WHO, WHEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Expand(tt.input, variables)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScriptExpand(t *testing.T) {
	t.Parallel()

	original := &Script{Operations: []Operation{
		{Op: "text", Text: "deploy of ${SERVICE}"},
		{Op: "section", Ops: []Operation{
			{Op: "list_item", Title: "Owner", Value: "<${OWNER}>"},
			{Op: "ul", Items: []string{"${SERVICE}-1"}},
		}},
		{Op: "status", Args: []string{"${SERVICE}"}},
	}}

	expanded, err := original.Expand(map[string]string{"SERVICE": "api", "OWNER": "ops@example.com"})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if expanded.Operations[0].Text != "deploy of api" {
		t.Errorf("text = %q", expanded.Operations[0].Text)
	}
	section := expanded.Operations[1].Ops
	if section[0].Value != "<ops@example.com>" || section[1].Items[0] != "api-1" {
		t.Errorf("section = %+v", section)
	}
	if expanded.Operations[2].Args[0] != "api" {
		t.Errorf("args = %v", expanded.Operations[2].Args)
	}
	if original.Operations[0].Text != "deploy of ${SERVICE}" || original.Operations[1].Ops[1].Items[0] != "${SERVICE}-1" {
		t.Error("Expand modified the original script")
	}

	_, err = original.Expand(map[string]string{"SERVICE": "api"})
	if err == nil || !strings.Contains(err.Error(), "ops[1].ops[0].value") {
		t.Errorf("error = %v, want path to the unresolved field", err)
	}
}
