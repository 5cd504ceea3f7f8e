// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError ends the process with Code after the command has already
// reported the outcome itself. main exits silently on it instead of
// printing "error: ...".
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit code %d", e.Code) }

// ExitCode is the status main passes to os.Exit.
func (e *ExitError) ExitCode() int { return e.Code }
