// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bureau-foundation/slackmessage/lib/clock"
	"github.com/bureau-foundation/slackmessage/lib/config"
	"github.com/bureau-foundation/slackmessage/lib/secret"
	"github.com/bureau-foundation/slackmessage/message"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// Profile supplies the token and the default name, icon, and channel.
	Profile config.Profile

	// APIURL is the Web API base URL. Defaults to config.DefaultAPIURL.
	// Ignored when Transport is set.
	APIURL string

	// Transport performs requests. If nil, an HTTPTransport is built
	// from APIURL and HTTPClient.
	Transport Transport

	// HTTPClient is used by the default transport. If nil, a client with
	// no timeout is used.
	HTTPClient *http.Client

	// Debug includes the serialized blocks in invalid-blocks failures.
	Debug bool

	// Logger is used for structured logging. If nil, slog.Default() is
	// used.
	Logger *slog.Logger

	// Clock supplies the current time for ScheduleIn. If nil, the real
	// clock is used.
	Clock clock.Clock

	// Warn receives build warnings from Build. If nil, warnings are
	// logged.
	Warn message.WarningFunc

	// Extensions are passed to every builder the client creates.
	Extensions map[string]message.Extension
}

// Client sends messages for one profile. It is safe to reuse across
// calls but not for concurrent use.
type Client struct {
	profile   config.Profile
	token     *secret.Buffer
	transport Transport
	debug     bool
	logger    *slog.Logger
	clock     clock.Clock

	warn       message.WarningFunc
	extensions map[string]message.Extension
}

// NewClient creates a client for config.Profile. The profile must have an
// API token.
func NewClient(cfg ClientConfig) (*Client, error) {
	profile := cfg.Profile
	if profile.Handle == "" {
		profile.Handle = config.DefaultHandle
	}
	if profile.APIToken == "" {
		return nil, &config.Error{
			Profile: profile.Handle,
			Message: fmt.Sprintf("profile %q has no api_token", profile.Handle),
			Err:     config.ErrMissingToken,
		}
	}

	transport := cfg.Transport
	if transport == nil {
		apiURL := cfg.APIURL
		if apiURL == "" {
			apiURL = config.DefaultAPIURL
		}
		httpTransport, err := NewHTTPTransport(apiURL, cfg.HTTPClient)
		if err != nil {
			return nil, err
		}
		transport = httpTransport
	}

	token, err := secret.NewFromString(profile.APIToken)
	if err != nil {
		return nil, fmt.Errorf("messaging: protecting API token: %w", err)
	}
	// The profile copy kept on the client must not hold the token.
	profile.APIToken = ""

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.Real()
	}

	return &Client{
		profile:    profile,
		token:      token,
		transport:  transport,
		debug:      cfg.Debug,
		logger:     logger,
		clock:      clk,
		warn:       cfg.Warn,
		extensions: cfg.Extensions,
	}, nil
}

// NewClientFromConfig creates a client for the profile registered under
// handle in cfg, using cfg's API URL and debug setting.
func NewClientFromConfig(cfg *config.Config, handle string, logger *slog.Logger) (*Client, error) {
	profile, err := cfg.Profile(handle)
	if err != nil {
		return nil, err
	}
	return NewClient(ClientConfig{
		Profile: profile,
		APIURL:  cfg.APIURL,
		Debug:   cfg.Debug,
		Logger:  logger,
	})
}

// Profile returns the client's profile without its token.
func (c *Client) Profile() config.Profile {
	return c.profile
}

// Close releases the protected token. The client must not be used
// afterwards.
func (c *Client) Close() error {
	return c.token.Close()
}

// Build renders a document with this client resolving email tags.
func (c *Client) Build(ctx context.Context, body func(*message.Builder)) (*message.Document, error) {
	return message.Build(ctx, c.BuilderOptions(), body)
}

// NewBuilder returns a builder wired to this client, for callers that
// assemble documents incrementally.
func (c *Client) NewBuilder(ctx context.Context) *message.Builder {
	return message.NewBuilder(ctx, c.BuilderOptions())
}

// BuilderOptions returns builder options that resolve email tags through
// this client, for callers that build documents from other sources such
// as message scripts.
func (c *Client) BuilderOptions() message.Options {
	return message.Options{
		Lookup:     c,
		Warn:       c.warn,
		Logger:     c.logger,
		Extensions: c.extensions,
	}
}

// call sends request and classifies the response. details.Profile is
// filled in here.
func (c *Client) call(ctx context.Context, op Operation, request *Request, details Details) (*Response, error) {
	request.Token = c.token
	response, err := c.transport.Do(ctx, request)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("slack api call",
		"method", request.Method,
		"endpoint", request.Endpoint,
		"profile", c.profile.Handle,
		"status", response.StatusCode,
	)

	details.Profile = c.profile.Handle
	if apiErr := Classify(op, response.StatusCode, errorCode(response.Body), string(response.Body), details); apiErr != nil {
		return nil, apiErr
	}
	return response, nil
}

// errorCode extracts the "error" field of a Web API response. Bodies that
// are not JSON objects yield no code and are classified by status alone.
func errorCode(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Error
}

// blocksForDiagnostics renders document blocks for invalid-blocks
// failures, or the placeholder when debugging is off.
func (c *Client) blocksForDiagnostics(document *message.Document) string {
	if !c.debug {
		return BlocksPlaceholder
	}
	data, err := document.BlocksIndentedJSON()
	if err != nil {
		return BlocksPlaceholder
	}
	return string(data)
}
