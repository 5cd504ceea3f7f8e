// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package message builds Slack Block Kit documents.
//
// A [Builder] owns an ordered list of blocks plus one implicit "default"
// section. Terse calls ([Builder.Text], [Builder.ListItem], [Builder.UL],
// and friends) accumulate into that implicit section. Any call that opens
// a block explicitly ([Builder.Section], [Builder.Divider],
// [Builder.Image], [Builder.Context]) first finalizes the implicit
// section: it is pushed when it has content and replaced by a fresh empty
// one either way. Section content is therefore always contiguous and
// emitted in call order.
//
// Errors are sticky. The first construction failure is recorded on the
// Builder, later calls become no-ops, and [Builder.Render] returns it.
// This keeps build callbacks free of per-call error checks:
//
//	doc, err := message.Build(ctx, message.Options{Lookup: client}, func(b *message.Builder) {
//	    b.Text("Deploy of <alice@example.com>'s branch finished")
//	    b.ListItem("Service", "api")
//	    b.ListItem("Duration", "4m12s")
//	    b.Divider()
//	    b.Context("triggered by CI")
//	})
//
// Prose that enters the document (section text, list values, bulleted and
// numbered lists, context lines) is enriched: every angle-bracketed email
// address such as <alice@example.com> is resolved through the
// [UserLookup] collaborator and replaced with a <@U123> mention. Lookup
// failures leave that occurrence untouched. Bare addresses are never
// rewritten.
//
// Non-fatal conditions (an accessory overwritten, a notification override
// replaced, a link button whose URL does not look like one) are reported
// as [Warning] values to [Options.Warn], or logged at Warn level when no
// callback is set.
package message
