// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret keeps Slack bot tokens off the Go heap.
//
// The messaging client holds its profile's token in a [Buffer] for its
// whole lifetime and converts it to a string only when setting the
// Authorization header. Profiles using api_token_file are read with
// [ReadTokenFile].
package secret
