// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"errors"
	"fmt"
)

// ConstructionError reports a malformed document: an empty section, empty
// text, an empty list, an unknown extension operation, or a document with
// no blocks. It is always produced while building, before any network
// call.
type ConstructionError struct {
	// Op is the builder operation that failed ("text", "section", ...).
	Op string
	// Message describes the problem.
	Message string
	// Err is an underlying cause, set when an extension fails.
	Err error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("message: %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("message: %s: %s", e.Op, e.Message)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// IsConstructionError reports whether err is or wraps a *ConstructionError.
func IsConstructionError(err error) bool {
	var constructionErr *ConstructionError
	return errors.As(err, &constructionErr)
}

func constructionErrorf(op, format string, args ...any) *ConstructionError {
	return &ConstructionError{Op: op, Message: fmt.Sprintf(format, args...)}
}
