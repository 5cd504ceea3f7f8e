// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package script reads message scripts: JSONC files that describe a
// message as a flat list of builder operations, so that messages can be
// authored on disk and sent from the command line.
//
// A script is an array of operation objects. Each object names its
// operation in "op" and carries that operation's arguments:
//
//	[
//	  // Header line for the alert.
//	  {"op": "text", "text": "*Deploy finished* for ${SERVICE}"},
//	  {"op": "list_item", "title": "Owner", "value": "<ops@example.com>"},
//	  {"op": "link_button", "label": "Logs", "url": "https://logs.example.com"},
//	  {"op": "divider"},
//	  {"op": "section", "ops": [
//	    {"op": "ul", "items": ["one", "two"]},
//	  ]},
//	  {"op": "context", "text": "sent by ci"},
//	]
//
// Operations that are not built in are dispatched to the builder's
// registered extensions with the operation's "args".
//
// The typical flow:
//
//  1. ReadFile or Parse: JSONC bytes → Script
//  2. Validate: structural checks (known operations, required fields,
//     what may appear inside a section)
//  3. Expand: substitute ${NAME} references from a variable map
//  4. Apply or Build: run the operations against a message.Builder
package script
