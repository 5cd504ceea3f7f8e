// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the slackmessage
// CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a flag source, and a Run
// function. Commands are assembled into a tree in cmd/slackmessage and
// dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, logger construction, and structured help output
// with examples.
//
// Flags come either from a [pflag.FlagSet] factory or from a parameter
// struct whose fields carry flag, desc, and default tags (see
// [BindFlags]). Parameter structs embed [JSONOutput] for --json support
// and [Verbosity] for --verbose.
//
// An unknown subcommand or flag is answered with the closest known name,
// measured by edit distance with adjacent swaps counted as one edit.
package cli
