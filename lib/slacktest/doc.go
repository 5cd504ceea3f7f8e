// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package slacktest provides a fake Slack Web API for tests.
//
// [Server] is an httptest server that understands the endpoints
// slackmessage calls. It records every request (endpoint, bearer token,
// query, decoded JSON payload) and answers with plausible success
// responses unless told otherwise:
//
//	server := slacktest.NewServer(t)
//	server.AddUser("alice@example.com", "U123")
//	server.Respond("chat.postMessage", slacktest.Error("channel_not_found"))
//
//	client, _ := messaging.NewClient(messaging.ClientConfig{
//	    Profile: profile,
//	    APIURL:  server.URL(),
//	})
//
// Responses set with [Server.Respond] persist until [Server.Reset];
// responses set with [Server.RespondOnce] are consumed in order before
// falling back to the persistent or default response.
//
// This package has no dependencies on the rest of slackmessage except
// lib/netutil.
package slacktest
