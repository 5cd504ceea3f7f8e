// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// slackmessage builds, previews, and sends Slack Block Kit messages
// described by JSONC message scripts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like lookup for an
		// unknown user) return an ExitError with the desired exit code.
		// Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCommand(newEnvironment()).Execute(ctx, os.Args[1:])
}
