// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bureau-foundation/slackmessage/lib/netutil"
	"github.com/bureau-foundation/slackmessage/lib/secret"
)

// Request is one Web API call.
type Request struct {
	// Method is the HTTP method.
	Method string
	// Endpoint is the API method name, e.g. "chat.postMessage".
	Endpoint string
	// Token is sent as a bearer credential. The transport reads it but
	// does not close it.
	Token *secret.Buffer
	// Query is appended to the URL when non-empty.
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
}

// Response is the raw result of a Web API call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs Web API calls. Implementations return an error only
// when no response was received; HTTP error statuses are returned as
// responses for the classifier.
type Transport interface {
	Do(ctx context.Context, request *Request) (*Response, error)
}

// HTTPTransport sends requests with net/http.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTransport returns a transport rooted at baseURL (for example
// "https://slack.com/api"). httpClient may be nil. The client is copied
// and redirect following is disabled on the copy.
func NewHTTPTransport(baseURL string, httpClient *http.Client) (*HTTPTransport, error) {
	if baseURL == "" {
		return nil, errors.New("messaging: API URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("messaging: invalid API URL %q: %w", baseURL, err)
	}

	var copied http.Client
	if httpClient != nil {
		copied = *httpClient
	}
	copied.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &HTTPTransport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &copied,
	}, nil
}

// Do sends request and returns the status and body.
func (t *HTTPTransport) Do(ctx context.Context, request *Request) (*Response, error) {
	requestURL := t.baseURL + "/" + request.Endpoint
	if len(request.Query) > 0 {
		requestURL += "?" + request.Query.Encode()
	}

	var bodyReader io.Reader
	if request.Body != nil {
		encoded, err := json.Marshal(request.Body)
		if err != nil {
			return nil, fmt.Errorf("messaging: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("messaging: failed to create request: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json; charset=utf-8")
	if request.Token != nil {
		httpRequest.Header.Set("Authorization", "Bearer "+request.Token.String())
	}

	httpResponse, err := t.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("messaging: request to %s %s failed: %w", request.Method, request.Endpoint, err)
	}
	defer httpResponse.Body.Close()

	body, err := netutil.ReadResponse(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("messaging: failed to read %s response: %w", request.Endpoint, err)
	}
	return &Response{StatusCode: httpResponse.StatusCode, Body: body}, nil
}
