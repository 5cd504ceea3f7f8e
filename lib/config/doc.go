// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds slackmessage profiles: named bundles of a Slack bot
// token plus optional display name, icon, and default channel.
//
// A [Config] is an ordinary value threaded through every call. There is no
// package-level registry; tests build their own Config and call
// [Config.Reset] when they need a clean slate.
//
// Configuration files are YAML and are loaded from exactly one place:
// [LoadFile] with an explicit path, or [Load] with the path taken from
// SLACKMESSAGE_CONFIG. There is no discovery and no fallback search.
// ${VAR} and ${VAR:-default} references in api_url, api_token, and
// api_token_file are expanded from the environment so that tokens do not
// have to be written to disk.
//
// [ClassifyIcon] implements the icon disambiguation rule shared by
// validation and the messaging client: ":name:" is an emoji, anything
// that looks like a host or URL is an image URL, everything else is a
// configuration error.
package config
