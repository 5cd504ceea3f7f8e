// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
)

type sendParams struct {
	cli.JSONOutput
	profileParams
	scriptParams
	To         string `json:"to"          flag:"to,t"        desc:"channel ID, #channel, user ID, or email address (default: the profile's default channel)"`
	SaveHandle string `json:"save_handle" flag:"save-handle" desc:"write the sent message's handle to this file"`
}

func postCommand(env *environment) *cli.Command {
	var params sendParams

	return &cli.Command{
		Name:    "post",
		Summary: "Post a message script",
		Description: `Build a message script and post it with chat.postMessage.

The target is taken from --to, or from the profile's default_channel.
A target that looks like an email address is resolved to a user and the
message is sent as a direct message.

With --save-handle, the returned message handle is written to a file so
the message can later be updated or deleted.`,
		Usage: "slackmessage post <script|-> [flags]",
		Examples: []cli.Example{
			{
				Description: "Post to the profile's default channel",
				Command:     "slackmessage post deploy.jsonc",
			},
			{
				Description: "Post with another profile and keep the handle",
				Command:     "slackmessage post deploy.jsonc -p alerts --to C0123 --save-handle deploy.cbor",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			parsed, err := env.loadScript(args, &params.scriptParams)
			if err != nil {
				return err
			}
			client, err := env.newClient(&params.profileParams, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			document, err := parsed.Build(ctx, client.BuilderOptions())
			if err != nil {
				return err
			}
			to, err := target(client, params.To)
			if err != nil {
				return err
			}
			handle, err := client.PostDocument(ctx, to, document)
			if err != nil {
				return err
			}
			return env.reportHandle(&params.JSONOutput, handle, params.SaveHandle)
		},
	}
}

type scheduleParams struct {
	sendParams
	At string        `json:"at" flag:"at" desc:"send time (RFC 3339, e.g. 2026-10-16T09:00:00Z)"`
	In time.Duration `json:"in" flag:"in" desc:"send after this delay (e.g. 90m)"`
}

func scheduleCommand(env *environment) *cli.Command {
	var params scheduleParams

	return &cli.Command{
		Name:    "schedule",
		Summary: "Schedule a message script for later",
		Description: `Build a message script and schedule it with chat.scheduleMessage.

Exactly one of --at and --in is required. Scripts that set bot_name or
bot_icon cannot be scheduled, and the profile's name and icon are not
applied to scheduled messages.

Scheduled messages cannot be updated, but can be deleted with their
handle before they are sent.`,
		Usage: "slackmessage schedule <script|-> (--at <time> | --in <duration>) [flags]",
		Examples: []cli.Example{
			{
				Description: "Send a reminder in two hours",
				Command:     "slackmessage schedule reminder.jsonc --in 2h --save-handle reminder.cbor",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			at, err := scheduleTime(params.At, params.In, env.clock.Now())
			if err != nil {
				return err
			}
			parsed, err := env.loadScript(args, &params.scriptParams)
			if err != nil {
				return err
			}
			client, err := env.newClient(&params.profileParams, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			document, err := parsed.Build(ctx, client.BuilderOptions())
			if err != nil {
				return err
			}
			to, err := target(client, params.To)
			if err != nil {
				return err
			}
			handle, err := client.ScheduleDocument(ctx, to, at, document)
			if err != nil {
				return err
			}
			return env.reportHandle(&params.JSONOutput, handle, params.SaveHandle)
		},
	}
}

// scheduleTime resolves --at and --in to an absolute time.
func scheduleTime(at string, in time.Duration, now time.Time) (time.Time, error) {
	switch {
	case at != "" && in != 0:
		return time.Time{}, fmt.Errorf("--at and --in are mutually exclusive")
	case at != "":
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --at: %w", err)
		}
		return parsed, nil
	case in > 0:
		return now.Add(in), nil
	case in < 0:
		return time.Time{}, fmt.Errorf("--in must be positive, got %s", in)
	default:
		return time.Time{}, fmt.Errorf("one of --at or --in is required")
	}
}

type updateParams struct {
	cli.JSONOutput
	profileParams
	scriptParams
	Handle string `json:"handle" flag:"handle" desc:"handle file of the message to update"`
}

func updateCommand(env *environment) *cli.Command {
	var params updateParams

	return &cli.Command{
		Name:    "update",
		Summary: "Replace a posted message with a new script",
		Description: `Build a message script and replace the content of a previously posted
message with chat.update. The handle file is rewritten with the handle
returned by Slack. Without --profile, the profile that sent the message
is used.

Scheduled messages cannot be updated.`,
		Usage: "slackmessage update <script|-> --handle <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Mark a deploy notice as finished",
				Command:     "slackmessage update deploy-done.jsonc --handle deploy.cbor",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			handle, _, err := loadHandle(params.Handle)
			if err != nil {
				return err
			}
			parsed, err := env.loadScript(args, &params.scriptParams)
			if err != nil {
				return err
			}
			if params.Profile == "" {
				params.Profile = handle.Profile
			}
			client, err := env.newClient(&params.profileParams, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			document, err := parsed.Build(ctx, client.BuilderOptions())
			if err != nil {
				return err
			}
			updated, err := client.UpdateDocument(ctx, handle, document)
			if err != nil {
				return err
			}
			return env.reportHandle(&params.JSONOutput, updated, params.Handle)
		},
	}
}
