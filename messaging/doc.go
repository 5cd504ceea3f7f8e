// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package messaging sends Block Kit documents through the Slack Web API.
//
// A [Client] is bound to one configuration profile. It builds documents
// with package message (acting as the builder's [message.UserLookup]),
// posts or schedules them, and updates or deletes what it sent:
//
//	client, err := messaging.NewClient(messaging.ClientConfig{Profile: profile})
//	...
//	handle, err := client.PostTo(ctx, "#deploys", func(b *message.Builder) {
//	    b.Text("Deploy finished")
//	})
//	...
//	err = client.Delete(ctx, handle)
//
// Every response is run through [Classify], an ordered table mapping the
// HTTP status and the Web API "error" code to a [Cause]. Permission
// codes are checked first, then codes specific to the operation, then
// rate limiting, then HTTP-level failures. The result is an *[APIError]
// that callers inspect with errors.As or the Is helpers.
//
// Requests go through a [Transport]. [HTTPTransport] is the production
// implementation; it never follows redirects so that a 302 (the usual
// symptom of a bad token or base URL) reaches the classifier. There are
// no retries and no timeouts beyond what the caller's context or
// http.Client imposes: one attempt per operation.
package messaging
