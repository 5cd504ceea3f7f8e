// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProfile is wrapped by lookups of unregistered handles.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrMissingToken is wrapped when a profile has no API token.
	ErrMissingToken = errors.New("missing api token")

	// ErrMissingDefaultChannel is wrapped when an operation needs the
	// profile's default channel and none is configured.
	ErrMissingDefaultChannel = errors.New("missing default channel")

	// ErrInvalidIcon is wrapped when an icon is neither an emoji nor a URL.
	ErrInvalidIcon = errors.New("invalid icon")
)

// Error is a configuration failure: unknown or incomplete profile, bad
// file, or an icon that cannot be classified. Configuration errors abort
// the operation immediately and are never retried.
type Error struct {
	// Profile is the handle involved, if any.
	Profile string
	// Message describes the problem.
	Message string
	// Err is the underlying cause or one of the sentinel errors above.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil || isSentinel(e.Err) {
		return "config: " + e.Message
	}
	return fmt.Sprintf("config: %s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// isSentinel reports whether err is one of this package's sentinels, whose
// meaning the Message already spells out.
func isSentinel(err error) bool {
	switch err {
	case ErrUnknownProfile, ErrMissingToken, ErrMissingDefaultChannel, ErrInvalidIcon:
		return true
	}
	return false
}

// IsConfigurationError reports whether err is or wraps an *Error.
func IsConfigurationError(err error) bool {
	var configErr *Error
	return errors.As(err, &configErr)
}
