// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"fmt"
	"os"
)

// ReadTokenFile reads a bot token from path. Only the first line is used,
// with surrounding whitespace removed, so files written by editors or
// "echo" work unchanged. The caller must Close the returned Buffer.
func ReadTokenFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	defer Zero(data)

	line, _, _ := bytes.Cut(data, []byte("\n"))
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, fmt.Errorf("token file %s is empty", path)
	}
	return NewFromBytes(line)
}
