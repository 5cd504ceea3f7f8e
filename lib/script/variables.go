// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"
	"regexp"
	"strings"
)

// variablePattern matches ${NAME} references.
var variablePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Expand replaces ${NAME} references in input with values from
// variables. It fails listing every reference with no value, so a script
// never sends a message with a literal placeholder in it.
func Expand(input string, variables map[string]string) (string, error) {
	var unresolved []string

	result := variablePattern.ReplaceAllStringFunc(input, func(match string) string {
		name := match[2 : len(match)-1]
		if value, exists := variables[name]; exists {
			return value
		}
		unresolved = append(unresolved, name)
		return match
	})

	if len(unresolved) > 0 {
		return "", fmt.Errorf("unresolved script variables: %s", strings.Join(unresolved, ", "))
	}
	return result, nil
}

// Expand returns a copy of the script with ${NAME} references in every
// string argument replaced. The receiver is not modified.
func (s *Script) Expand(variables map[string]string) (*Script, error) {
	operations, err := expandOperations(s.Operations, variables, "ops")
	if err != nil {
		return nil, err
	}
	return &Script{Operations: operations}, nil
}

func expandOperations(operations []Operation, variables map[string]string, prefix string) ([]Operation, error) {
	if operations == nil {
		return nil, nil
	}
	expanded := make([]Operation, len(operations))
	for index, operation := range operations {
		path := fmt.Sprintf("%s[%d]", prefix, index)
		var err error

		fields := []struct {
			name  string
			value *string
		}{
			{"text", &operation.Text},
			{"title", &operation.Title},
			{"value", &operation.Value},
			{"label", &operation.Label},
			{"url", &operation.URL},
			{"alt_text", &operation.AltText},
			{"style", &operation.Style},
		}
		for _, field := range fields {
			if *field.value, err = Expand(*field.value, variables); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", path, field.name, err)
			}
		}

		if operation.Items, err = expandStrings(operation.Items, variables, path+".items"); err != nil {
			return nil, err
		}
		if operation.Args, err = expandStrings(operation.Args, variables, path+".args"); err != nil {
			return nil, err
		}
		if operation.Ops, err = expandOperations(operation.Ops, variables, path+".ops"); err != nil {
			return nil, err
		}
		expanded[index] = operation
	}
	return expanded, nil
}

func expandStrings(values []string, variables map[string]string, prefix string) ([]string, error) {
	if values == nil {
		return nil, nil
	}
	expanded := make([]string, len(values))
	for index, value := range values {
		result, err := Expand(value, variables)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", prefix, index, err)
		}
		expanded[index] = result
	}
	return expanded, nil
}
