// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bureau-foundation/slackmessage/lib/secret"
)

func TestHTTPTransport(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	transport, err := NewHTTPTransport(server.URL+"/api/", nil)
	if err != nil {
		t.Fatal(err)
	}
	token, err := secret.NewFromString("xoxb-secret")
	if err != nil {
		t.Fatal(err)
	}
	defer token.Close()

	response, err := transport.Do(context.Background(), &Request{
		Method:   http.MethodPost,
		Endpoint: "chat.postMessage",
		Token:    token,
		Query:    url.Values{"a": {"b"}},
		Body:     map[string]string{"channel": "C1"},
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if response.StatusCode != http.StatusOK || string(response.Body) != `{"ok":true}` {
		t.Errorf("response = %d %s", response.StatusCode, response.Body)
	}
	if gotPath != "/api/chat.postMessage" || gotQuery != "a=b" {
		t.Errorf("request URL = %s?%s", gotPath, gotQuery)
	}
	if gotAuth != "Bearer xoxb-secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotContentType != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["channel"] != "C1" {
		t.Errorf("body = %v", gotBody)
	}
}

func TestHTTPTransportDoesNotFollowRedirects(t *testing.T) {
	followed := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			followed = true
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}))
	defer server.Close()

	// A caller-supplied client must not have its own policy mutated.
	callerClient := &http.Client{}
	transport, err := NewHTTPTransport(server.URL, callerClient)
	if err != nil {
		t.Fatal(err)
	}
	response, err := transport.Do(context.Background(), &Request{Method: http.MethodGet, Endpoint: "users.lookupByEmail"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if response.StatusCode != http.StatusFound {
		t.Errorf("status = %d, want 302", response.StatusCode)
	}
	if followed {
		t.Error("redirect was followed")
	}
	if callerClient.CheckRedirect != nil {
		t.Error("caller's http.Client was modified")
	}
}

func TestNewHTTPTransportRequiresURL(t *testing.T) {
	if _, err := NewHTTPTransport("", nil); err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestHTTPTransportConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	transport, err := NewHTTPTransport(baseURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := transport.Do(context.Background(), &Request{Method: http.MethodGet, Endpoint: "x"}); err == nil {
		t.Fatal("expected connection error")
	}
}
