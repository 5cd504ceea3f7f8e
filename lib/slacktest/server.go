// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package slacktest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bureau-foundation/slackmessage/lib/netutil"
)

// Call is one recorded request.
type Call struct {
	Method   string
	Endpoint string
	// Token is the bearer credential, without the "Bearer " prefix.
	Token string
	// ContentType is the request Content-Type header.
	ContentType string
	Query       url.Values
	// Payload is the decoded JSON body, nil for bodiless requests.
	Payload map[string]any
	// Raw is the undecoded body.
	Raw []byte
}

// Field returns the payload field key as a string, or "" when absent.
func (c Call) Field(key string) string {
	value, _ := c.Payload[key].(string)
	return value
}

// Blocks returns the payload's "blocks" array.
func (c Call) Blocks() []map[string]any {
	raw, _ := c.Payload["blocks"].([]any)
	blocks := make([]map[string]any, 0, len(raw))
	for _, block := range raw {
		if object, ok := block.(map[string]any); ok {
			blocks = append(blocks, object)
		}
	}
	return blocks
}

// Reply is a canned response.
type Reply struct {
	// StatusCode defaults to 200.
	StatusCode int
	// Body is sent verbatim.
	Body string
	// Header values are added to the response.
	Header http.Header
}

// Error returns a 200 reply carrying a Web API error code.
func Error(code string) Reply {
	return Reply{Body: fmt.Sprintf(`{"ok":false,"error":%q}`, code)}
}

// Status returns a reply with the given HTTP status and body.
func Status(statusCode int, body string) Reply {
	return Reply{StatusCode: statusCode, Body: body}
}

// Redirect returns a 302 reply, what Slack sends for some bad tokens.
func Redirect(location string) Reply {
	return Reply{
		StatusCode: http.StatusFound,
		Body:       "",
		Header:     http.Header{"Location": {location}},
	}
}

// Server is a fake Slack Web API.
type Server struct {
	server *httptest.Server

	mu         sync.Mutex
	calls      []Call
	persistent map[string]Reply
	queued     map[string][]Reply
	users      map[string]string

	sequence atomic.Uint64
}

// NewServer starts a server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	server := &Server{
		persistent: make(map[string]Reply),
		queued:     make(map[string][]Reply),
		users:      make(map[string]string),
	}
	server.server = httptest.NewServer(http.HandlerFunc(server.handle))
	t.Cleanup(server.server.Close)
	return server
}

// URL is the API base URL to configure clients with.
func (s *Server) URL() string {
	return s.server.URL + "/api"
}

// AddUser makes users.lookupByEmail resolve email to id.
func (s *Server) AddUser(email, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = id
}

// Respond sets the reply for every later call to endpoint.
func (s *Server) Respond(endpoint string, reply Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistent[endpoint] = reply
}

// RespondOnce queues a reply for the next call to endpoint.
func (s *Server) RespondOnce(endpoint string, reply Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued[endpoint] = append(s.queued[endpoint], reply)
}

// Reset forgets recorded calls and configured replies. Users added with
// AddUser are kept.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.persistent = make(map[string]Reply)
	s.queued = make(map[string][]Reply)
}

// Calls returns every recorded call in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsTo returns the recorded calls to endpoint.
func (s *Server) CallsTo(endpoint string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []Call
	for _, call := range s.calls {
		if call.Endpoint == endpoint {
			matched = append(matched, call)
		}
	}
	return matched
}

// LastCall returns the most recent call to endpoint.
func (s *Server) LastCall(endpoint string) (Call, bool) {
	calls := s.CallsTo(endpoint)
	if len(calls) == 0 {
		return Call{}, false
	}
	return calls[len(calls)-1], true
}

func (s *Server) handle(writer http.ResponseWriter, request *http.Request) {
	raw, err := netutil.ReadResponse(request.Body)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	call := Call{
		Method:      request.Method,
		Endpoint:    strings.TrimPrefix(request.URL.Path, "/api/"),
		Token:       strings.TrimPrefix(request.Header.Get("Authorization"), "Bearer "),
		ContentType: request.Header.Get("Content-Type"),
		Query:       request.URL.Query(),
		Raw:         raw,
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &call.Payload); err != nil {
			http.Error(writer, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	reply, ok := s.nextReply(call.Endpoint)
	s.mu.Unlock()
	if !ok {
		reply = s.defaultReply(call)
	}

	for key, values := range reply.Header {
		for _, value := range values {
			writer.Header().Add(key, value)
		}
	}
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	statusCode := reply.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	writer.WriteHeader(statusCode)
	writer.Write([]byte(reply.Body))
}

// nextReply pops a queued reply or returns the persistent one. Caller
// holds s.mu.
func (s *Server) nextReply(endpoint string) (Reply, bool) {
	if queue := s.queued[endpoint]; len(queue) > 0 {
		s.queued[endpoint] = queue[1:]
		return queue[0], true
	}
	reply, ok := s.persistent[endpoint]
	return reply, ok
}

func (s *Server) defaultReply(call Call) Reply {
	channel := call.Field("channel")
	// Posting to a user ID lands in a direct-message channel.
	if strings.HasPrefix(channel, "U") {
		channel = "D" + channel[1:]
	}

	switch call.Endpoint {
	case "users.lookupByEmail":
		email := call.Query.Get("email")
		s.mu.Lock()
		id, ok := s.users[email]
		s.mu.Unlock()
		if !ok {
			return Error("users_not_found")
		}
		return jsonReply(map[string]any{
			"ok":   true,
			"user": map[string]any{"id": id, "profile": map[string]any{"email": email}},
		})

	case "chat.postMessage":
		return jsonReply(map[string]any{"ok": true, "channel": channel, "ts": s.nextTimestamp()})

	case "chat.scheduleMessage":
		return jsonReply(map[string]any{
			"ok":                   true,
			"channel":              channel,
			"scheduled_message_id": fmt.Sprintf("Q%08d", s.sequence.Add(1)),
			"post_at":              call.Payload["post_at"],
		})

	case "chat.update", "chat.delete":
		return jsonReply(map[string]any{"ok": true, "channel": channel, "ts": call.Field("ts")})

	case "chat.deleteScheduledMessage":
		return jsonReply(map[string]any{"ok": true})

	default:
		return Status(http.StatusNotFound, `{"ok":false,"error":"unknown_method"}`)
	}
}

func (s *Server) nextTimestamp() string {
	return fmt.Sprintf("1700000000.%06d", s.sequence.Add(1))
}

func jsonReply(value map[string]any) Reply {
	body, err := json.Marshal(value)
	if err != nil {
		panic("slacktest: encoding reply: " + err.Error())
	}
	return Reply{Body: string(body)}
}
