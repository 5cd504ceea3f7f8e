// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

// WarningKind identifies a non-fatal build condition.
type WarningKind string

const (
	// WarnAccessoryOverwritten: a section already had a button or image
	// accessory and a later call replaced it.
	WarnAccessoryOverwritten WarningKind = "accessory_overwritten"

	// WarnNotificationOverwritten: NotificationText was called more than
	// once. The last value wins.
	WarnNotificationOverwritten WarningKind = "notification_overwritten"

	// WarnSuspiciousURL: a link button target does not look like a URL.
	// The button is still added.
	WarnSuspiciousURL WarningKind = "suspicious_url"
)

// Warning is a diagnostic event emitted while building.
type Warning struct {
	Kind WarningKind
	// Section is the zero-based block index the affected section will
	// occupy, or -1 for document-level warnings.
	Section int
	// Detail is a human-readable description.
	Detail string
}

// WarningFunc receives build warnings.
type WarningFunc func(Warning)
