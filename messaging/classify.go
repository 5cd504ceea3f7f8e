// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"fmt"
	"net/http"
)

// Details carries the request values that classified failure messages
// refer to.
type Details struct {
	Profile            string
	Channel            string
	Email              string
	PostAt             int64
	Timestamp          string
	ScheduledMessageID string

	// Blocks is the block JSON shown in invalid-blocks failures, or a
	// placeholder when debugging is off.
	Blocks string
}

// BlocksPlaceholder stands in for block JSON when debugging is disabled.
const BlocksPlaceholder = "[Enable debugging in configuration to view block data.]"

// permissionCodes are authentication and authorization failures, shared
// by every operation and checked before anything else.
var permissionCodes = map[string]bool{
	"token_revoked":           true,
	"token_expired":           true,
	"invalid_auth":            true,
	"not_authed":              true,
	"team_access_not_granted": true,
	"no_permission":           true,
	"missing_scope":           true,
	"not_allowed_token_type":  true,
	"ekm_access_denied":       true,
}

var rateLimitCodes = map[string]bool{
	"rate_limited": true,
	"ratelimited":  true,
}

// rule maps one Web API error code to a cause and its message.
type rule struct {
	cause   Cause
	message func(details Details) string
}

var sendRules = map[string]rule{
	"invalid_blocks": {CauseInvalidBlocks, func(d Details) string {
		return "Couldn't send Slack message because the request contained invalid blocks:\n" + d.Blocks
	}},
	"invalid_blocks_format": {CauseInvalidBlocksFormat, func(d Details) string {
		return "Couldn't send Slack message because blocks is not a valid JSON object or doesn't match the Block Kit syntax:\n" + d.Blocks
	}},
	"channel_not_found": {CauseChannelNotFound, func(d Details) string {
		return fmt.Sprintf("Tried to send Slack message to non-existent channel or user '%s'", d.Channel)
	}},
	"invalid_time": {CauseInvalidTime, func(d Details) string {
		return fmt.Sprintf("Couldn't schedule Slack message because you requested an invalid time '%d'", d.PostAt)
	}},
	"time_in_past": {CauseTimeInPast, func(d Details) string {
		return fmt.Sprintf("Couldn't schedule Slack message because you requested a time in the past (or too close to now) '%d'", d.PostAt)
	}},
	"time_too_far": {CauseTimeTooFar, func(d Details) string {
		return fmt.Sprintf("Couldn't schedule Slack message because you requested a time more than 120 days in the future '%d'", d.PostAt)
	}},
	"message_too_long": {CauseMessageTooLong, func(Details) string {
		return "Tried to send Slack message, but the message was too long"
	}},
	"invalid_arguments": {CauseInvalidArguments, func(Details) string {
		return "Tried to send Slack message with invalid payload"
	}},
}

var updateRules = map[string]rule{
	"invalid_blocks": {CauseInvalidBlocks, func(Details) string {
		return "Couldn't update Slack message because the serialized message had an invalid format"
	}},
	"invalid_blocks_format": {CauseInvalidBlocksFormat, func(Details) string {
		return "Couldn't update Slack message because the serialized message had an invalid format"
	}},
	"channel_not_found": {CauseChannelNotFound, func(d Details) string {
		return fmt.Sprintf("Tried to update Slack message to non-existent channel or user '%s'", d.Channel)
	}},
	"message_not_found": {CauseMessageNotFound, func(d Details) string {
		return fmt.Sprintf("Tried to update Slack message, but the message wasn't found (timestamp '%s' for channel '%s')", d.Timestamp, d.Channel)
	}},
	"cant_update_message": {CauseCantUpdateMessage, func(d Details) string {
		return fmt.Sprintf("Couldn't update message because the message type isn't able to be updated, or %s isn't allowed to update it", d.Profile)
	}},
	"edit_window_closed": {CauseEditWindowClosed, func(Details) string {
		return "Couldn't update message because it's too old"
	}},
	"message_too_long": {CauseMessageTooLong, func(Details) string {
		return "Tried to update Slack message, but the message was too long"
	}},
	"invalid_arguments": {CauseInvalidArguments, func(Details) string {
		return "Tried to update Slack message with invalid payload"
	}},
}

var deleteRules = map[string]rule{
	"channel_not_found": {CauseChannelNotFound, func(d Details) string {
		return fmt.Sprintf("Tried to delete Slack message in non-existent channel '%s'", d.Channel)
	}},
	"invalid_scheduled_message_id": {CauseInvalidScheduledMessageID, func(d Details) string {
		return fmt.Sprintf("Can't delete message because the ID was invalid, or the message has already posted (%s)", d.ScheduledMessageID)
	}},
	"message_not_found": {CauseMessageNotFound, func(d Details) string {
		return fmt.Sprintf("Tried to delete Slack message, but the message wasn't found (timestamp '%s' for channel '%s')", d.Timestamp, d.Channel)
	}},
	"cant_delete_message": {CauseCantDeleteMessage, func(d Details) string {
		return fmt.Sprintf("Can't delete message because '%s' doesn't have permission to", d.Profile)
	}},
	"compliance_exports_prevent_deletion": {CauseComplianceExportsPreventDeletion, func(Details) string {
		return "Can't delete message because team compliance settings prevent it"
	}},
}

var lookupRules = map[string]rule{
	"users_not_found": {CauseUserNotFound, func(d Details) string {
		return fmt.Sprintf("Couldn't find a user with the email '%s'", d.Email)
	}},
}

// operationText holds the phrases each operation contributes to the
// generic failure messages.
type operationText struct {
	verb   string // "Couldn't <verb> because ..."
	during string // "Got 302 response <during>"
	rules  map[string]rule
}

var operations = map[Operation]operationText{
	OpPost:     {"send Slack message", "while posting to Slack", sendRules},
	OpSchedule: {"schedule Slack message", "while scheduling a message", sendRules},
	OpUpdate:   {"update Slack message", "while updating a message", updateRules},
	OpDelete:   {"delete Slack message", "while deleting a message", deleteRules},
	OpLookup:   {"look up users", "during user lookup", lookupRules},
}

// Classify maps a Web API response to a failure, or nil for success.
// Checks run in a fixed order and the first match wins:
//
//  1. permission and authentication codes
//  2. codes specific to op
//  3. rate limiting
//  4. HTTP 302 (bad token or base URL)
//  5. any other non-200 status
//  6. any remaining non-empty code
//
// Slack can report permission codes alongside other conditions; they
// stay ahead of the operation-specific table.
func Classify(op Operation, statusCode int, code, body string, details Details) *APIError {
	text, ok := operations[op]
	if !ok {
		text = operationText{verb: "call Slack", during: "during " + string(op)}
	}

	failure := func(cause Cause, message string) *APIError {
		return &APIError{
			Operation:  op,
			Cause:      cause,
			Code:       code,
			StatusCode: statusCode,
			Body:       body,
			Profile:    details.Profile,
			Message:    message,
		}
	}

	if permissionCodes[code] {
		return failure(CausePermissionDenied, fmt.Sprintf(
			"Couldn't %s because the API key for profile '%s' is wrong, or the app has insufficient permissions (%s)",
			text.verb, details.Profile, code))
	}
	if matched, ok := text.rules[code]; ok {
		return failure(matched.cause, matched.message(details))
	}
	if rateLimitCodes[code] {
		return failure(CauseRateLimited, fmt.Sprintf(
			"Couldn't %s because you've reached your rate limit", text.verb))
	}
	if statusCode == http.StatusFound {
		return failure(CauseMisconfiguredEndpoint, fmt.Sprintf(
			"Got 302 response %s. Check your API key for profile '%s'", text.during, details.Profile))
	}
	if statusCode != http.StatusOK {
		return failure(CauseUnexpectedHTTPStatus, fmt.Sprintf(
			"Got an error back from the Slack API (HTTP %d):\n%s", statusCode, body))
	}
	if code != "" {
		return failure(CauseUnclassifiedRemoteError, fmt.Sprintf(
			"Received error response '%s' from Slack:\n%s", code, body))
	}
	return nil
}
