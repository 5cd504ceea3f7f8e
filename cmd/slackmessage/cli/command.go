// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the command tree: either a group of
// subcommands or a leaf with a Run function.
type Command struct {
	// Name is what the user types to select the command.
	Name string

	// Summary is the one-line description in the parent's command list.
	Summary string

	// Description is the longer text at the top of the command's help.
	Description string

	// Usage replaces the synthesized usage line when set.
	Usage string

	Examples []Example

	// Flags builds the command's flag set. Ignored when Params is set.
	Flags func() *pflag.FlagSet

	// Params returns a pointer to the command's parameter struct, whose
	// tagged fields become flags (see [BindFlags]). The struct is filled
	// in before Run. When it has a LogLevel() slog.Level method, as
	// structs embedding [Verbosity] do, that level configures the logger.
	Params func() any

	Subcommands []*Command

	// Run is called with the positional arguments left after flag
	// parsing. A command with Subcommands and Run falls back to Run when
	// no subcommand name matches.
	Run func(ctx context.Context, args []string, logger *slog.Logger) error

	// Stderr receives help text. Inherited from the parent; os.Stderr at
	// the root.
	Stderr io.Writer

	// NewLogger builds the logger passed to Run. Inherited from the
	// parent; [NewCommandLogger] at the root.
	NewLogger func(level slog.Level) *slog.Logger

	parent *Command
}

// Example is a command line shown in help, with an optional comment.
type Example struct {
	Description string
	Command     string
}

// Execute runs the command tree against args, the command line without
// the program name.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.stderr())
		return nil
	}

	if len(c.Subcommands) > 0 {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			if sub := c.subcommand(args[0]); sub != nil {
				sub.parent = c
				return sub.Execute(ctx, args[1:])
			}
			if c.Run == nil {
				return c.unknownCommand(args[0])
			}
		}
		if c.Run == nil {
			c.PrintHelp(c.stderr())
			if len(args) == 0 {
				return errors.New("subcommand required")
			}
			return fmt.Errorf("subcommand required (got flag %q)", args[0])
		}
	}

	if c.Run == nil {
		c.PrintHelp(c.stderr())
		return fmt.Errorf("no action defined for %q", c.fullName())
	}

	params, positional, err := c.parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		c.PrintHelp(c.stderr())
		return nil
	}
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if leveler, ok := params.(interface{ LogLevel() slog.Level }); ok {
		level = leveler.LogLevel()
	}
	return c.Run(ctx, positional, c.newLogger()(level))
}

func (c *Command) subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (c *Command) unknownCommand(name string) error {
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)%s", name, suggestion, c.helpHint())
	}
	return fmt.Errorf("unknown command %q%s", name, c.helpHint())
}

// parseFlags parses args into the command's flags and returns the bound
// parameter struct (nil without Params) and the positional arguments.
func (c *Command) parseFlags(args []string) (any, []string, error) {
	params, flagSet := c.flagSet()
	if flagSet == nil {
		return nil, args, nil
	}
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	err := flagSet.Parse(args)
	switch {
	case err == nil:
		return params, flagSet.Args(), nil
	case errors.Is(err, pflag.ErrHelp):
		return nil, nil, err
	case strings.HasPrefix(err.Error(), "unknown flag") || strings.HasPrefix(err.Error(), "unknown shorthand flag"):
		// A fresh set: the failed parse may have left values behind.
		_, clean := c.flagSet()
		if suggestion := suggestFlag(args, clean); suggestion != "" {
			return nil, nil, fmt.Errorf("%v (did you mean %s?)%s", err, suggestion, c.helpHint())
		}
	}
	return nil, nil, fmt.Errorf("%v%s", err, c.helpHint())
}

// flagSet builds the command's flag set, or returns nil when it has no
// flags. params is the struct the flags write into, when there is one.
func (c *Command) flagSet() (params any, flagSet *pflag.FlagSet) {
	switch {
	case c.Params != nil:
		params = c.Params()
		return params, FlagsFromParams(c.Name, params)
	case c.Flags != nil:
		return nil, c.Flags()
	}
	return nil, nil
}

func (c *Command) helpHint() string {
	return fmt.Sprintf("\n\nRun '%s --help' for usage.", c.fullName())
}

// PrintHelp writes the command's help text to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	switch {
	case c.Description != "":
		fmt.Fprintf(w, "%s\n\n", c.Description)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	usage := c.Usage
	if usage == "" {
		usage = name + " [flags]"
		if len(c.Subcommands) > 0 {
			usage = name + " <command> [flags]"
		}
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", usage)

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		table.Flush()
	}

	if _, flagSet := c.flagSet(); flagSet != nil {
		if usages := flagSet.FlagUsages(); usages != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usages)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description == "" {
				fmt.Fprintf(w, "  %s\n", example.Command)
				continue
			}
			fmt.Fprintf(w, "  # %s\n  %s\n\n", example.Description, example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName is the command path from the root, e.g. "slackmessage post".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func (c *Command) stderr() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.Stderr != nil {
			return command.Stderr
		}
	}
	return os.Stderr
}

func (c *Command) newLogger() func(slog.Level) *slog.Logger {
	for command := c; command != nil; command = command.parent {
		if command.NewLogger != nil {
			return command.NewLogger
		}
	}
	return NewCommandLogger
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
