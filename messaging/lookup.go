// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/slack-go/slack"
)

// LookupUser finds the workspace user with the given email address.
func (c *Client) LookupUser(ctx context.Context, email string) (*slack.User, error) {
	response, err := c.call(ctx, OpLookup, &Request{
		Method:   http.MethodGet,
		Endpoint: "users.lookupByEmail",
		Query:    url.Values{"email": {email}},
	}, Details{Email: email})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		User slack.User `json:"user"`
	}
	if err := json.Unmarshal(response.Body, &decoded); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse users.lookupByEmail response: %w", err)
	}
	if decoded.User.ID == "" {
		return nil, fmt.Errorf("messaging: users.lookupByEmail returned no user for %q", email)
	}
	return &decoded.User, nil
}

// UserID returns the ID of the user with the given email address. It
// makes Client a message.UserLookup.
func (c *Client) UserID(ctx context.Context, email string) (string, error) {
	user, err := c.LookupUser(ctx, email)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
