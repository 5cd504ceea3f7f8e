// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfoUsesLinkerValues(t *testing.T) {
	savedCommit, savedTime := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = savedCommit, savedTime })

	GitCommit, BuildTime = "abc1234", "2026-10-16T09:00:00Z"
	if got, want := Info(), Version+" (abc1234, 2026-10-16T09:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestInfoWithoutLinkerValues(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, Version+" (") {
		t.Errorf("Info() = %q, want prefix %q", info, Version)
	}
	if !strings.Contains(Full(), "Go: ") {
		t.Errorf("Full() = %q, missing Go version", Full())
	}
}
