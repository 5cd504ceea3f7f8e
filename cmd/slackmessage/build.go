// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/slack-go/slack"
	"golang.org/x/term"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
	"github.com/bureau-foundation/slackmessage/lib/preview"
	"github.com/bureau-foundation/slackmessage/lib/script"
	"github.com/bureau-foundation/slackmessage/message"
)

type buildParams struct {
	profileParams
	scriptParams
	Resolve bool `json:"resolve" flag:"resolve" desc:"resolve tagged email addresses through the profile (requires a token)"`
}

// buildOutput is the JSON written by "slackmessage build".
type buildOutput struct {
	Blocks           []slack.Block `json:"blocks"`
	NotificationText string        `json:"text,omitempty"`
	BotName          string        `json:"username,omitempty"`
	BotIcon          string        `json:"icon,omitempty"`
}

func buildCommand(env *environment) *cli.Command {
	var params buildParams

	return &cli.Command{
		Name:    "build",
		Summary: "Render a message script to Block Kit JSON",
		Description: `Run a message script through the builder and print the resulting
blocks, notification text, and identity overrides as JSON.

Tagged email addresses (<someone@example.com>) are left as they are
unless --resolve is given, in which case they are looked up through the
selected profile and replaced with user mentions.`,
		Usage: "slackmessage build <script|-> [flags]",
		Examples: []cli.Example{
			{
				Description: "Render a script with a variable",
				Command:     "slackmessage build deploy.jsonc --var SERVICE=api",
			},
			{
				Description: "Render from stdin, resolving mentions",
				Command:     "cat deploy.jsonc | slackmessage build - --resolve",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			parsed, err := env.loadScript(args, &params.scriptParams)
			if err != nil {
				return err
			}

			document, err := env.buildDocument(ctx, parsed, &params.profileParams, params.Resolve, logger)
			if err != nil {
				return err
			}
			return cli.WriteJSON(env.stdout, buildOutput{
				Blocks:           document.Blocks,
				NotificationText: document.NotificationText,
				BotName:          document.BotName,
				BotIcon:          document.BotIcon,
			})
		},
	}
}

type previewParams struct {
	profileParams
	scriptParams
	Resolve bool   `json:"resolve" flag:"resolve" desc:"resolve tagged email addresses through the profile (requires a token)"`
	Width   int    `json:"width"   flag:"width,w" desc:"preview width in cells (default: terminal width)"`
	Color   string `json:"color"   flag:"color"   desc:"styling: auto, always, or never" default:"auto"`
}

func previewCommand(env *environment) *cli.Command {
	var params previewParams

	return &cli.Command{
		Name:    "preview",
		Summary: "Render a message script in the terminal",
		Description: `Build a message script and draw an approximation of how Slack would
show it: styled section text, two-column fields, buttons, images,
dividers, and context lines.`,
		Usage: "slackmessage preview <script|-> [flags]",
		Examples: []cli.Example{
			{
				Description: "Preview at a fixed width",
				Command:     "slackmessage preview deploy.jsonc --width 60",
			},
			{
				Description: "Page through a long message with colors kept",
				Command:     "slackmessage preview report.jsonc --color always | less -R",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			color, err := preview.ParseColorMode(params.Color)
			if err != nil {
				return err
			}
			parsed, err := env.loadScript(args, &params.scriptParams)
			if err != nil {
				return err
			}

			document, err := env.buildDocument(ctx, parsed, &params.profileParams, params.Resolve, logger)
			if err != nil {
				return err
			}

			width := params.Width
			if width <= 0 {
				width = env.terminalWidth()
			}
			fmt.Fprintln(env.stdout, preview.Render(document, preview.Options{
				Width:    width,
				Renderer: preview.NewRenderer(env.stdout, color),
			}))
			return nil
		},
	}
}

// buildDocument builds parsed offline, or through a profile client when
// resolve is set.
func (env *environment) buildDocument(ctx context.Context, parsed *script.Script, params *profileParams, resolve bool, logger *slog.Logger) (*message.Document, error) {
	options := message.Options{Logger: logger}
	if resolve {
		client, err := env.newClient(params, logger)
		if err != nil {
			return nil, err
		}
		defer client.Close()
		options.Lookup = client
	}
	return parsed.Build(ctx, options)
}

// terminalWidth returns the width of stdout when it is a terminal.
func (env *environment) terminalWidth() int {
	if file, ok := env.stdout.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return preview.DefaultWidth
}
