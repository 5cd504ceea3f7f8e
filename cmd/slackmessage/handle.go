// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
	"github.com/bureau-foundation/slackmessage/lib/codec"
)

type handleParams struct {
	cli.JSONOutput
	Diagnose bool `json:"diag" flag:"diag" desc:"print the file's CBOR diagnostic notation"`
}

func handleCommand(env *environment) *cli.Command {
	var params handleParams

	return &cli.Command{
		Name:    "handle",
		Summary: "Show a saved message handle",
		Description: `Print the message a handle file (written by --save-handle) refers
to: its profile, channel, and timestamp or scheduled message ID.

With --diag, the raw CBOR is printed in RFC 8949 diagnostic notation.`,
		Usage: "slackmessage handle <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Inspect the encoded handle",
				Command:     "slackmessage handle deploy.cbor --diag",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected one handle file, got %d arguments", len(args))
			}
			handle, data, err := loadHandle(args[0])
			if err != nil {
				return err
			}

			if params.Diagnose {
				notation, err := codec.Diagnose(data)
				if err != nil {
					return fmt.Errorf("diagnosing %s: %w", args[0], err)
				}
				fmt.Fprintln(env.stdout, notation)
				return nil
			}
			if done, err := params.EmitJSON(env.stdout, handle); done {
				return err
			}
			fmt.Fprintln(env.stdout, handle.String())
			return nil
		},
	}
}
