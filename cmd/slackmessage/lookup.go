// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
	"github.com/bureau-foundation/slackmessage/messaging"
)

type lookupParams struct {
	cli.JSONOutput
	profileParams
}

// lookupResult is the JSON written by "slackmessage lookup".
type lookupResult struct {
	Email    string `json:"email"`
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	RealName string `json:"real_name,omitempty"`
}

func lookupCommand(env *environment) *cli.Command {
	var params lookupParams

	return &cli.Command{
		Name:    "lookup",
		Summary: "Find the user ID for an email address",
		Description: `Look up a user by email address with users.lookupByEmail and print
their user ID. Exits with status 1 when no user has the address.`,
		Usage: "slackmessage lookup <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Find a user's ID",
				Command:     "slackmessage lookup someone@example.com",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected one email address, got %d arguments", len(args))
			}
			email := args[0]

			client, err := env.newClient(&params.profileParams, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			user, err := client.LookupUser(ctx, email)
			if messaging.IsUserNotFound(err) {
				fmt.Fprintf(env.stderr, "no user with email %s\n", email)
				return &cli.ExitError{Code: 1}
			}
			if err != nil {
				return err
			}

			result := lookupResult{Email: email, ID: user.ID, Name: user.Name, RealName: user.RealName}
			if done, err := params.EmitJSON(env.stdout, result); done {
				return err
			}
			if result.RealName != "" {
				fmt.Fprintf(env.stdout, "%s\t%s\n", result.ID, result.RealName)
			} else {
				fmt.Fprintln(env.stdout, result.ID)
			}
			return nil
		},
	}
}
