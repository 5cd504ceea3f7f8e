// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bureau-foundation/slackmessage/lib/codec"
)

// Handle identifies a message that was posted, scheduled, or updated.
// Exactly one of Timestamp and ScheduledMessageID is set.
type Handle struct {
	// OK is the response's "ok" field.
	OK bool `json:"ok"`
	// Channel is the channel ID the message lives in.
	Channel string `json:"channel"`
	// Timestamp is the message "ts" for messages sent immediately.
	Timestamp string `json:"ts,omitempty"`
	// ScheduledMessageID is set for scheduled messages.
	ScheduledMessageID string `json:"scheduled_message_id,omitempty"`
	// Profile is the handle of the profile that sent the message.
	Profile string `json:"profile"`
	// Response is the raw JSON response body.
	Response json.RawMessage `json:"response,omitempty"`
}

// sendResponse is the subset of chat.* responses a Handle is built from.
type sendResponse struct {
	OK                 bool   `json:"ok"`
	Channel            string `json:"channel"`
	Timestamp          string `json:"ts"`
	ScheduledMessageID string `json:"scheduled_message_id"`
}

func newHandle(body []byte, profile string) (*Handle, error) {
	var decoded sendResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse response: %w", err)
	}
	return &Handle{
		OK:                 decoded.OK,
		Channel:            decoded.Channel,
		Timestamp:          decoded.Timestamp,
		ScheduledMessageID: decoded.ScheduledMessageID,
		Profile:            profile,
		Response:           body,
	}, nil
}

// IsScheduled reports whether the handle refers to a scheduled message.
// Scheduled messages cannot be updated.
func (h *Handle) IsScheduled() bool {
	return h.ScheduledMessageID != ""
}

// SentToUser reports whether the message went to a direct-message
// channel. Such messages cannot be deleted.
func (h *Handle) SentToUser() bool {
	return strings.HasPrefix(h.Channel, "D")
}

// DecodeResponse unmarshals the raw response into v.
func (h *Handle) DecodeResponse(v any) error {
	return json.Unmarshal(h.Response, v)
}

func (h *Handle) String() string {
	status := "error"
	if h.OK {
		status = "ok"
	}
	identifier := "timestamp=" + h.Timestamp
	if h.IsScheduled() {
		identifier = "scheduled_message_id=" + h.ScheduledMessageID
	}
	return fmt.Sprintf("<slackmessage.Handle %s profile=%s channel=%s %s>", status, h.Profile, h.Channel, identifier)
}

// plainHandle has Handle's fields without its methods, so the CBOR codec
// encodes it field by field instead of calling MarshalBinary again.
type plainHandle Handle

// MarshalBinary encodes the handle as deterministic CBOR so that it can
// be stored and used to update or delete the message later.
func (h *Handle) MarshalBinary() ([]byte, error) {
	return codec.Marshal((*plainHandle)(h))
}

// UnmarshalBinary decodes a handle produced by MarshalBinary.
func (h *Handle) UnmarshalBinary(data []byte) error {
	var decoded plainHandle
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("messaging: decoding handle: %w", err)
	}
	*h = Handle(decoded)
	return nil
}
