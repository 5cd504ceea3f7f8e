// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
)

type profilesParams struct {
	cli.JSONOutput
	profileParams
	Validate bool `json:"validate" flag:"validate" desc:"check every profile and fail on problems"`
}

// profileEntry is one row of "slackmessage profiles". Tokens are never
// printed.
type profileEntry struct {
	Handle         string `json:"handle"`
	Name           string `json:"name,omitempty"`
	Icon           string `json:"icon,omitempty"`
	DefaultChannel string `json:"default_channel,omitempty"`
	HasToken       bool   `json:"has_token"`
}

func profilesCommand(env *environment) *cli.Command {
	var params profilesParams

	return &cli.Command{
		Name:    "profiles",
		Summary: "List configured profiles",
		Description: `List the profiles in the configuration file with their display name,
icon, and default channel. Tokens are never shown.

With --validate, every profile is checked (token present, icon is an
emoji or URL) and the command fails listing all problems.`,
		Usage: "slackmessage profiles [flags]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("profiles takes no positional arguments, got %q", args[0])
			}
			cfg, err := env.loadConfig(&params.profileParams, logger)
			if err != nil {
				return err
			}
			if params.Validate {
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			var entries []profileEntry
			for _, handle := range cfg.Handles() {
				profile, err := cfg.Profile(handle)
				if err != nil {
					return err
				}
				entries = append(entries, profileEntry{
					Handle:         handle,
					Name:           profile.Name,
					Icon:           profile.Icon,
					DefaultChannel: profile.DefaultChannel,
					HasToken:       profile.APIToken != "",
				})
			}

			if done, err := params.EmitJSON(env.stdout, entries); done {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(env.stdout, "no profiles configured")
				return nil
			}
			writer := tabwriter.NewWriter(env.stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "HANDLE\tNAME\tICON\tDEFAULT CHANNEL\tTOKEN")
			for _, entry := range entries {
				token := "missing"
				if entry.HasToken {
					token = "set"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					entry.Handle, dash(entry.Name), dash(entry.Icon), dash(entry.DefaultChannel), token)
			}
			return writer.Flush()
		},
	}
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
