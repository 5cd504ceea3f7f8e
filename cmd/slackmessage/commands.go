// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
	"github.com/bureau-foundation/slackmessage/lib/clock"
	"github.com/bureau-foundation/slackmessage/lib/version"
)

// environment is what commands read from and write to. Tests replace
// its members to run commands in-process.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	clock  clock.Clock

	// httpClient is passed to every messaging client.
	httpClient *http.Client

	// newLogger overrides cli.NewCommandLogger.
	newLogger func(slog.Level) *slog.Logger
}

func newEnvironment() *environment {
	return &environment{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		getenv:     os.Getenv,
		clock:      clock.Real(),
		httpClient: http.DefaultClient,
	}
}

// rootCommand builds the complete slackmessage command tree.
func rootCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name: "slackmessage",
		Description: `slackmessage: build, preview, and send Slack Block Kit messages.

Messages are described by JSONC message scripts: arrays of builder
operations such as text, list_item, link_button, and divider. Scripts can
be rendered to Block Kit JSON, previewed in the terminal, and posted,
scheduled, updated, or deleted through a configured profile.

Profiles are read from the YAML file named by --config, or by the
SLACKMESSAGE_CONFIG environment variable.`,
		Stderr:    env.stderr,
		NewLogger: env.newLogger,
		Subcommands: []*cli.Command{
			buildCommand(env),
			previewCommand(env),
			postCommand(env),
			scheduleCommand(env),
			updateCommand(env),
			deleteCommand(env),
			lookupCommand(env),
			profilesCommand(env),
			handleCommand(env),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Fprintf(env.stdout, "slackmessage %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show the Block Kit JSON a script produces",
				Command:     "slackmessage build deploy.jsonc --var SERVICE=api",
			},
			{
				Description: "Preview a script in the terminal",
				Command:     "slackmessage preview deploy.jsonc --var SERVICE=api",
			},
			{
				Description: "Post to a channel and keep the handle for later edits",
				Command:     "slackmessage post deploy.jsonc --to '#ops' --save-handle deploy.cbor",
			},
			{
				Description: "Send a direct message by email address",
				Command:     "slackmessage post note.jsonc --to someone@example.com",
			},
			{
				Description: "Delete a previously posted message",
				Command:     "slackmessage delete --handle deploy.cbor",
			},
		},
	}
}
