// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"net/http"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	details := Details{
		Profile:            "alerts",
		Channel:            "#ops",
		Email:              "nobody@example.com",
		PostAt:             1700000000,
		Timestamp:          "1700000000.000100",
		ScheduledMessageID: "Q123",
		Blocks:             BlocksPlaceholder,
	}

	tests := []struct {
		name        string
		op          Operation
		status      int
		code        string
		wantCause   Cause
		wantMessage string
	}{
		// Permission codes win over everything, including non-200 statuses.
		{"post invalid_auth", OpPost, http.StatusOK, "invalid_auth", CausePermissionDenied,
			"API key for profile 'alerts' is wrong, or the app has insufficient permissions (invalid_auth)"},
		{"post invalid_auth with 500", OpPost, http.StatusInternalServerError, "invalid_auth", CausePermissionDenied, "(invalid_auth)"},
		{"delete token_revoked", OpDelete, http.StatusOK, "token_revoked", CausePermissionDenied, "Couldn't delete Slack message"},
		{"lookup missing_scope", OpLookup, http.StatusOK, "missing_scope", CausePermissionDenied, "Couldn't look up users"},
		{"update ekm_access_denied", OpUpdate, http.StatusOK, "ekm_access_denied", CausePermissionDenied, "Couldn't update Slack message"},

		// Post and schedule.
		{"post invalid_blocks", OpPost, http.StatusOK, "invalid_blocks", CauseInvalidBlocks,
			"invalid blocks:\n" + BlocksPlaceholder},
		{"post invalid_blocks_format", OpPost, http.StatusOK, "invalid_blocks_format", CauseInvalidBlocksFormat,
			"doesn't match the Block Kit syntax"},
		{"post channel_not_found", OpPost, http.StatusOK, "channel_not_found", CauseChannelNotFound,
			"non-existent channel or user '#ops'"},
		{"post message_too_long", OpPost, http.StatusOK, "message_too_long", CauseMessageTooLong, "too long"},
		{"post invalid_arguments", OpPost, http.StatusOK, "invalid_arguments", CauseInvalidArguments, "invalid payload"},
		{"schedule invalid_time", OpSchedule, http.StatusOK, "invalid_time", CauseInvalidTime, "invalid time '1700000000'"},
		{"schedule time_in_past", OpSchedule, http.StatusOK, "time_in_past", CauseTimeInPast, "time in the past"},
		{"schedule time_too_far", OpSchedule, http.StatusOK, "time_too_far", CauseTimeTooFar, "120 days"},

		// Update.
		{"update invalid_blocks", OpUpdate, http.StatusOK, "invalid_blocks", CauseInvalidBlocks, "invalid format"},
		{"update message_not_found", OpUpdate, http.StatusOK, "message_not_found", CauseMessageNotFound,
			"timestamp '1700000000.000100' for channel '#ops'"},
		{"update cant_update_message", OpUpdate, http.StatusOK, "cant_update_message", CauseCantUpdateMessage, "alerts isn't allowed"},
		{"update edit_window_closed", OpUpdate, http.StatusOK, "edit_window_closed", CauseEditWindowClosed, "too old"},
		{"update channel_not_found", OpUpdate, http.StatusOK, "channel_not_found", CauseChannelNotFound, "update Slack message"},

		// Delete.
		{"delete invalid_scheduled_message_id", OpDelete, http.StatusOK, "invalid_scheduled_message_id",
			CauseInvalidScheduledMessageID, "already posted (Q123)"},
		{"delete cant_delete_message", OpDelete, http.StatusOK, "cant_delete_message", CauseCantDeleteMessage,
			"'alerts' doesn't have permission"},
		{"delete compliance", OpDelete, http.StatusOK, "compliance_exports_prevent_deletion",
			CauseComplianceExportsPreventDeletion, "compliance settings"},
		{"delete message_not_found", OpDelete, http.StatusOK, "message_not_found", CauseMessageNotFound, "wasn't found"},
		{"delete channel_not_found", OpDelete, http.StatusOK, "channel_not_found", CauseChannelNotFound, "non-existent channel '#ops'"},

		// Lookup.
		{"lookup users_not_found", OpLookup, http.StatusOK, "users_not_found", CauseUserNotFound,
			"Couldn't find a user with the email 'nobody@example.com'"},

		// Codes outside an operation's table fall through.
		{"delete message_too_long is unclassified", OpDelete, http.StatusOK, "message_too_long", CauseUnclassifiedRemoteError,
			"Received error response 'message_too_long'"},
		{"lookup channel_not_found is unclassified", OpLookup, http.StatusOK, "channel_not_found", CauseUnclassifiedRemoteError,
			"Received error response 'channel_not_found' from Slack"},

		// Rate limiting, then HTTP-level failures.
		{"rate_limited", OpPost, http.StatusOK, "rate_limited", CauseRateLimited, "rate limit"},
		{"ratelimited with 429", OpUpdate, http.StatusTooManyRequests, "ratelimited", CauseRateLimited, "rate limit"},
		{"302", OpPost, http.StatusFound, "", CauseMisconfiguredEndpoint,
			"Got 302 response while posting to Slack. Check your API key for profile 'alerts'"},
		{"500", OpDelete, http.StatusInternalServerError, "", CauseUnexpectedHTTPStatus, "(HTTP 500):\nbody"},
		{"unknown code", OpPost, http.StatusOK, "nuffin", CauseUnclassifiedRemoteError,
			"Received error response 'nuffin' from Slack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := Classify(tt.op, tt.status, tt.code, "body", details)
			if apiErr == nil {
				t.Fatal("Classify returned nil")
			}
			if apiErr.Cause != tt.wantCause {
				t.Errorf("Cause = %v, want %v", apiErr.Cause, tt.wantCause)
			}
			if !strings.Contains(apiErr.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want it to contain %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.Operation != tt.op || apiErr.Code != tt.code || apiErr.StatusCode != tt.status {
				t.Errorf("error fields = %+v", apiErr)
			}
			if apiErr.Profile != "alerts" || apiErr.Body != "body" {
				t.Errorf("Profile/Body = %q/%q", apiErr.Profile, apiErr.Body)
			}
		})
	}
}

func TestClassifySuccess(t *testing.T) {
	for _, op := range []Operation{OpLookup, OpPost, OpSchedule, OpUpdate, OpDelete} {
		if apiErr := Classify(op, http.StatusOK, "", `{"ok":true}`, Details{}); apiErr != nil {
			t.Errorf("Classify(%s, 200, \"\") = %v, want nil", op, apiErr)
		}
	}
}

func TestCauseString(t *testing.T) {
	if got := CauseInvalidScheduledMessageID.String(); got != "invalid_scheduled_message_id" {
		t.Errorf("String = %q", got)
	}
	if got := Cause(0).String(); got != "unknown" {
		t.Errorf("zero String = %q", got)
	}
}

func TestErrorHelpers(t *testing.T) {
	permission := Classify(OpPost, http.StatusOK, "not_authed", "", Details{})
	if !IsPermissionDenied(permission) || IsRateLimited(permission) {
		t.Error("permission error misreported")
	}
	limited := Classify(OpPost, http.StatusOK, "ratelimited", "", Details{})
	if !IsRateLimited(limited) {
		t.Error("rate limit not reported")
	}
	if !IsUserNotFound(Classify(OpLookup, http.StatusOK, "users_not_found", "", Details{})) {
		t.Error("users_not_found not reported")
	}
	if !strings.HasPrefix(permission.Error(), "slack: ") {
		t.Errorf("Error() = %q", permission.Error())
	}
}
