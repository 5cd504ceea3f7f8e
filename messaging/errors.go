// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import "errors"

// Operation is the kind of Web API call being classified.
type Operation string

const (
	OpLookup   Operation = "lookup"
	OpPost     Operation = "post"
	OpSchedule Operation = "schedule"
	OpUpdate   Operation = "update"
	OpDelete   Operation = "delete"
)

// Cause is the classified reason a Web API call failed.
type Cause int

const (
	CausePermissionDenied Cause = iota + 1
	CauseInvalidBlocks
	CauseInvalidBlocksFormat
	CauseChannelNotFound
	CauseMessageTooLong
	CauseInvalidArguments
	CauseInvalidTime
	CauseTimeInPast
	CauseTimeTooFar
	CauseMessageNotFound
	CauseCantUpdateMessage
	CauseEditWindowClosed
	CauseInvalidScheduledMessageID
	CauseCantDeleteMessage
	CauseComplianceExportsPreventDeletion
	CauseUserNotFound
	CauseRateLimited
	CauseMisconfiguredEndpoint
	CauseUnexpectedHTTPStatus
	CauseUnclassifiedRemoteError
)

var causeNames = map[Cause]string{
	CausePermissionDenied:                 "permission_denied",
	CauseInvalidBlocks:                    "invalid_blocks",
	CauseInvalidBlocksFormat:              "invalid_blocks_format",
	CauseChannelNotFound:                  "channel_not_found",
	CauseMessageTooLong:                   "message_too_long",
	CauseInvalidArguments:                 "invalid_arguments",
	CauseInvalidTime:                      "invalid_time",
	CauseTimeInPast:                       "time_in_past",
	CauseTimeTooFar:                       "time_too_far",
	CauseMessageNotFound:                  "message_not_found",
	CauseCantUpdateMessage:                "cant_update_message",
	CauseEditWindowClosed:                 "edit_window_closed",
	CauseInvalidScheduledMessageID:        "invalid_scheduled_message_id",
	CauseCantDeleteMessage:                "cant_delete_message",
	CauseComplianceExportsPreventDeletion: "compliance_exports_prevent_deletion",
	CauseUserNotFound:                     "user_not_found",
	CauseRateLimited:                      "rate_limited",
	CauseMisconfiguredEndpoint:            "misconfigured_endpoint",
	CauseUnexpectedHTTPStatus:             "unexpected_http_status",
	CauseUnclassifiedRemoteError:          "unclassified_remote_error",
}

func (c Cause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return "unknown"
}

// APIError is a classified Web API failure. Callers can use errors.As to
// extract it:
//
//	var apiErr *messaging.APIError
//	if errors.As(err, &apiErr) && apiErr.Cause == messaging.CauseChannelNotFound {
//	    ...
//	}
type APIError struct {
	// Operation is the call that failed.
	Operation Operation
	// Cause is the classified reason.
	Cause Cause
	// Code is the Web API "error" field, empty for HTTP-level failures.
	Code string
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the raw response body.
	Body string
	// Profile is the handle of the profile the call was made with.
	Profile string
	// Message is the user-facing description.
	Message string
}

func (e *APIError) Error() string {
	return "slack: " + e.Message
}

// IsCause reports whether err is an *APIError with the given cause.
func IsCause(err error, cause Cause) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Cause == cause
	}
	return false
}

// IsPermissionDenied reports whether err is a classified permission or
// authentication failure.
func IsPermissionDenied(err error) bool {
	return IsCause(err, CausePermissionDenied)
}

// IsRateLimited reports whether err is a rate-limit failure.
func IsRateLimited(err error) bool {
	return IsCause(err, CauseRateLimited)
}

// IsUserNotFound reports whether err is a failed email lookup.
func IsUserNotFound(err error) bool {
	return IsCause(err, CauseUserNotFound)
}
