// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP body reads.
//
// Slack Web API responses are small JSON documents. ReadResponse caps
// every read at MaxResponseSize so that a misbehaving server or proxy
// cannot exhaust memory. The cap is generous enough never to interfere
// with a real response.
package netutil

import (
	"fmt"
	"io"
)

// MaxResponseSize bounds HTTP body reads: 16 MB.
const MaxResponseSize int64 = 16 << 20

// ReadResponse reads an HTTP body up to MaxResponseSize bytes. A body that
// reaches the limit is an error rather than a silently truncated document.
func ReadResponse(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxResponseSize {
		return nil, fmt.Errorf("body exceeds %d bytes", MaxResponseSize)
	}
	return data, nil
}
