// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"context"
	"log/slog"
	"regexp"
)

// UserLookup resolves an email address to a Slack user ID. The messaging
// client implements it with users.lookupByEmail.
type UserLookup interface {
	UserID(ctx context.Context, email string) (string, error)
}

// UserLookupFunc adapts a function to UserLookup.
type UserLookupFunc func(ctx context.Context, email string) (string, error)

// UserID calls f.
func (f UserLookupFunc) UserID(ctx context.Context, email string) (string, error) {
	return f(ctx, email)
}

var (
	// emailTagPattern matches an email address wrapped in angle brackets.
	emailTagPattern = regexp.MustCompile(`<[^@ \t\r\n<]+@[^@ \t\r\n]+\.[^@ \t\r\n]+>`)

	emailPattern = regexp.MustCompile(`^\S{1,}@\S{2,}\.\S{2,}$`)
)

// LooksLikeEmail reports whether target is shaped like an email address
// rather than a channel name or ID.
func LooksLikeEmail(target string) bool {
	return emailPattern.MatchString(target)
}

// Enrich replaces every <email> tag in text with a <@ID> mention. Each
// occurrence is looked up independently; an occurrence whose lookup fails
// or returns an empty ID is left as written. A nil lookup returns text
// unchanged.
func Enrich(ctx context.Context, lookup UserLookup, text string) string {
	return enrich(ctx, lookup, nil, text)
}

func enrich(ctx context.Context, lookup UserLookup, logger *slog.Logger, text string) string {
	if lookup == nil {
		return text
	}
	return emailTagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		address := tag[1 : len(tag)-1]
		userID, err := lookup.UserID(ctx, address)
		if err != nil || userID == "" {
			if logger != nil {
				logger.Debug("leaving email tag unresolved", "email", address, "error", err)
			}
			return tag
		}
		return "<@" + userID + ">"
	})
}
