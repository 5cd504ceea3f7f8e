// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts the wall clock so that schedule-time arithmetic
// can be tested deterministically.
//
// Production code injects [Real]; tests inject [Fake] and move time with
// [FakeClock.Advance] or [FakeClock.Set]. The messaging client only ever
// reads the current time (to turn "in 10 minutes" into a post_at Unix
// timestamp), so the interface is deliberately limited to Now.
package clock
