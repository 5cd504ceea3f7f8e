// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"

	"github.com/bureau-foundation/slackmessage/lib/config"
	"github.com/bureau-foundation/slackmessage/message"
)

// messageParams is the body of chat.postMessage, chat.scheduleMessage,
// and chat.update.
type messageParams struct {
	Channel   string        `json:"channel"`
	Username  string        `json:"username,omitempty"`
	Blocks    []slack.Block `json:"blocks"`
	Text      string        `json:"text,omitempty"`
	IconEmoji string        `json:"icon_emoji,omitempty"`
	IconURL   string        `json:"icon_url,omitempty"`
	PostAt    int64         `json:"post_at,omitempty"`
	Timestamp string        `json:"ts,omitempty"`
}

// deleteParams is the body of chat.delete and
// chat.deleteScheduledMessage.
type deleteParams struct {
	Channel            string `json:"channel"`
	Timestamp          string `json:"ts,omitempty"`
	ScheduledMessageID string `json:"scheduled_message_id,omitempty"`
}

// PostTo builds a document and posts it to target: a channel name or ID,
// or an email address, which is resolved to the user's ID first.
func (c *Client) PostTo(ctx context.Context, target string, body func(*message.Builder)) (*Handle, error) {
	document, err := c.Build(ctx, body)
	if err != nil {
		return nil, err
	}
	return c.PostDocument(ctx, target, document)
}

// PostAs builds a document and posts it to the profile's default channel.
func (c *Client) PostAs(ctx context.Context, body func(*message.Builder)) (*Handle, error) {
	target, err := c.DefaultChannel()
	if err != nil {
		return nil, err
	}
	return c.PostTo(ctx, target, body)
}

// PostDocument posts an already rendered document to target.
func (c *Client) PostDocument(ctx context.Context, target string, document *message.Document) (*Handle, error) {
	channel, err := c.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	params := messageParams{
		Channel: channel,
		Blocks:  document.Blocks,
		Text:    document.NotificationText,
	}
	if err := c.applyIdentity(&params, document); err != nil {
		return nil, err
	}

	response, err := c.call(ctx, OpPost, &Request{
		Method:   http.MethodPost,
		Endpoint: "chat.postMessage",
		Body:     params,
	}, Details{Channel: channel, Blocks: c.blocksForDiagnostics(document)})
	if err != nil {
		return nil, err
	}
	return newHandle(response.Body, c.profile.Handle)
}

// ScheduleTo builds a document and schedules it for delivery to target at
// the given time.
func (c *Client) ScheduleTo(ctx context.Context, target string, at time.Time, body func(*message.Builder)) (*Handle, error) {
	document, err := c.Build(ctx, body)
	if err != nil {
		return nil, err
	}
	return c.ScheduleDocument(ctx, target, at, document)
}

// ScheduleAs schedules a document for the profile's default channel.
func (c *Client) ScheduleAs(ctx context.Context, at time.Time, body func(*message.Builder)) (*Handle, error) {
	target, err := c.DefaultChannel()
	if err != nil {
		return nil, err
	}
	return c.ScheduleTo(ctx, target, at, body)
}

// ScheduleIn schedules a document for delivery to target after delay.
func (c *Client) ScheduleIn(ctx context.Context, target string, delay time.Duration, body func(*message.Builder)) (*Handle, error) {
	return c.ScheduleTo(ctx, target, c.clock.Now().Add(delay), body)
}

// ScheduleDocument schedules an already rendered document. Scheduled
// messages are always sent under the app's own name and icon, so a
// document that overrides either is refused.
func (c *Client) ScheduleDocument(ctx context.Context, target string, at time.Time, document *message.Document) (*Handle, error) {
	if document.HasOverrides() {
		return nil, &message.ConstructionError{
			Op:      "schedule",
			Message: "scheduled messages can't override the bot name or icon",
		}
	}
	channel, err := c.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	params := messageParams{
		Channel: channel,
		Blocks:  document.Blocks,
		Text:    document.NotificationText,
		PostAt:  at.Unix(),
	}

	response, err := c.call(ctx, OpSchedule, &Request{
		Method:   http.MethodPost,
		Endpoint: "chat.scheduleMessage",
		Body:     params,
	}, Details{Channel: channel, PostAt: params.PostAt, Blocks: c.blocksForDiagnostics(document)})
	if err != nil {
		return nil, err
	}
	return newHandle(response.Body, c.profile.Handle)
}

// Update replaces the content of a sent message. Scheduled messages
// cannot be updated.
func (c *Client) Update(ctx context.Context, handle *Handle, body func(*message.Builder)) (*Handle, error) {
	if handle.IsScheduled() {
		return nil, errScheduledUpdate()
	}
	document, err := c.Build(ctx, body)
	if err != nil {
		return nil, err
	}
	return c.UpdateDocument(ctx, handle, document)
}

// UpdateDocument replaces the content of a sent message with document.
func (c *Client) UpdateDocument(ctx context.Context, handle *Handle, document *message.Document) (*Handle, error) {
	if handle.IsScheduled() {
		return nil, errScheduledUpdate()
	}
	params := messageParams{
		Channel:   handle.Channel,
		Timestamp: handle.Timestamp,
		Blocks:    document.Blocks,
		Text:      document.NotificationText,
	}

	response, err := c.call(ctx, OpUpdate, &Request{
		Method:   http.MethodPost,
		Endpoint: "chat.update",
		Body:     params,
	}, Details{Channel: handle.Channel, Timestamp: handle.Timestamp, Blocks: c.blocksForDiagnostics(document)})
	if err != nil {
		return nil, err
	}
	return newHandle(response.Body, c.profile.Handle)
}

// Delete removes a sent message, or cancels a scheduled one. Messages sent
// to a user's direct-message channel cannot be deleted.
func (c *Client) Delete(ctx context.Context, handle *Handle) error {
	if handle.SentToUser() {
		return &message.ConstructionError{
			Op:      "delete",
			Message: "it's not possible to delete messages sent directly to users",
		}
	}

	request := &Request{Method: http.MethodPost}
	details := Details{Channel: handle.Channel}
	if handle.IsScheduled() {
		request.Endpoint = "chat.deleteScheduledMessage"
		request.Body = deleteParams{Channel: handle.Channel, ScheduledMessageID: handle.ScheduledMessageID}
		details.ScheduledMessageID = handle.ScheduledMessageID
	} else {
		request.Endpoint = "chat.delete"
		request.Body = deleteParams{Channel: handle.Channel, Timestamp: handle.Timestamp}
		details.Timestamp = handle.Timestamp
	}

	_, err := c.call(ctx, OpDelete, request, details)
	return err
}

func errScheduledUpdate() error {
	return &message.ConstructionError{
		Op:      "update",
		Message: "scheduled messages can't be updated; delete it and schedule a new one",
	}
}

// resolveTarget turns an email address into a user ID. Channel names and
// IDs pass through unchanged.
func (c *Client) resolveTarget(ctx context.Context, target string) (string, error) {
	if target == "" {
		return "", &config.Error{Profile: c.profile.Handle, Message: "no target channel or user given"}
	}
	if !message.LooksLikeEmail(target) {
		return target, nil
	}
	return c.UserID(ctx, target)
}

// DefaultChannel returns the profile's default channel, or a configuration
// error wrapping config.ErrMissingDefaultChannel when it has none.
func (c *Client) DefaultChannel() (string, error) {
	if c.profile.DefaultChannel == "" {
		return "", &config.Error{
			Profile: c.profile.Handle,
			Message: fmt.Sprintf("profile %q has no default_channel", c.profile.Handle),
			Err:     config.ErrMissingDefaultChannel,
		}
	}
	return c.profile.DefaultChannel, nil
}

// applyIdentity sets the sender name and icon. Document overrides win
// over the profile's values.
func (c *Client) applyIdentity(params *messageParams, document *message.Document) error {
	params.Username = c.profile.Name
	if document.BotName != "" {
		params.Username = document.BotName
	}

	icon := c.profile.Icon
	if document.BotIcon != "" {
		icon = document.BotIcon
	}
	if icon == "" {
		return nil
	}
	kind, err := config.ClassifyIcon(icon)
	if err != nil {
		return err
	}
	switch kind {
	case config.IconEmoji:
		params.IconEmoji = icon
	case config.IconURL:
		params.IconURL = icon
	}
	return nil
}
