// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
)

type deleteParams struct {
	profileParams
	Handle string `json:"handle" flag:"handle" desc:"handle file of the message to delete"`
}

func deleteCommand(env *environment) *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a posted or scheduled message",
		Description: `Delete the message a handle file refers to. Posted messages are removed
with chat.delete; scheduled messages are cancelled with
chat.deleteScheduledMessage.

Messages sent as direct messages cannot be deleted. Without --profile,
the profile that sent the message is used.`,
		Usage: "slackmessage delete --handle <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Cancel a scheduled reminder",
				Command:     "slackmessage delete --handle reminder.cbor",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("delete takes no positional arguments, got %q", args[0])
			}
			handle, _, err := loadHandle(params.Handle)
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

			if err := client.Delete(ctx, handle); err != nil {
				return err
			}
			fmt.Fprintf(env.stdout, "deleted %s\n", handle)
			return nil
		},
	}
}
