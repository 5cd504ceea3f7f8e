// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the CBOR configuration used for everything slackmessage
// writes to disk in binary form, chiefly saved message handles.
//
// JSON stays the format for the Slack Web API and CLI --json output. CBOR
// is used when a value only needs to round-trip between invocations of
// this library, such as a handle saved by "slackmessage post
// --save-handle" and later consumed by "slackmessage delete --handle".
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2), so the same
// handle always produces the same bytes. Struct fields are named by their
// `json` tags; fxamacker/cbor falls back to them when no `cbor` tag is
// present, which keeps one set of tags for both formats.
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Raw Slack responses are kept as map[string]any; decode any-typed
		// maps the way encoding/json would.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v as deterministic CBOR.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Diagnose returns RFC 8949 diagnostic notation for data. The CLI uses it
// to show the contents of a saved handle file.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
