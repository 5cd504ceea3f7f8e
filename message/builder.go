// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"
)

// Extension is a caller-defined builder operation, invoked through
// [Builder.Call]. It receives the builder and the string arguments the
// operation was called with.
type Extension func(b *Builder, args []string) error

// Options configures a Builder.
type Options struct {
	// Lookup resolves tagged email addresses to user IDs. When nil, text
	// is not enriched.
	Lookup UserLookup

	// Warn receives non-fatal build warnings. When nil, warnings are
	// logged on Logger.
	Warn WarningFunc

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Extensions are named operations reachable through Call and from
	// message scripts.
	Extensions map[string]Extension
}

// Builder assembles one Document. It is not safe for concurrent use and
// must not be reused after Render.
type Builder struct {
	ctx     context.Context
	options Options
	logger  *slog.Logger

	blocks       []slack.Block
	sectionTexts []string
	pending      *Section
	// open is the explicit section whose body is running.
	open *Section

	botName          string
	botIcon          string
	notification     string
	haveNotification bool

	err      error
	document *Document
}

// NewBuilder returns an empty builder. ctx is passed to every user lookup.
func NewBuilder(ctx context.Context, options Options) *Builder {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	builder := &Builder{
		ctx:     ctx,
		options: options,
		logger:  logger,
	}
	builder.pending = newSection(builder)
	return builder
}

// Build runs body against a new builder and renders the result.
func Build(ctx context.Context, options Options, body func(*Builder)) (*Document, error) {
	builder := NewBuilder(ctx, options)
	body(builder)
	return builder.Render()
}

// Ctx returns the context the builder was created with, for extensions
// that make their own calls.
func (b *Builder) Ctx() context.Context {
	return b.ctx
}

// Err returns the first construction error recorded, if any.
func (b *Builder) Err() error {
	return b.err
}

// Section finalizes the implicit section, runs body against a new
// section, and appends it. A section left empty by body is a construction
// error.
func (b *Builder) Section(body func(*Section)) {
	if !b.readyBlock("section") {
		return
	}
	b.flush()
	section := newSection(b)
	b.open = section
	body(section)
	b.open = nil
	if b.err != nil {
		return
	}
	if !section.HasContent() {
		b.fail(constructionErrorf("section", "section has no text, accessory, or list items"))
		return
	}
	b.push(section)
}

// Divider finalizes the implicit section and appends a divider.
func (b *Builder) Divider() {
	if !b.readyBlock("divider") {
		return
	}
	b.flush()
	b.blocks = append(b.blocks, slack.NewDividerBlock())
}

// Image finalizes the implicit section and appends an image block. An
// empty title omits the caption.
func (b *Builder) Image(url, altText, title string) {
	if !b.readyBlock("image") {
		return
	}
	if url == "" || altText == "" {
		b.fail(constructionErrorf("image", "image needs a URL and alt text"))
		return
	}
	b.flush()
	var titleObject *slack.TextBlockObject
	if title != "" {
		titleObject = slack.NewTextBlockObject(slack.PlainTextType, title, true, false)
	}
	b.blocks = append(b.blocks, slack.NewImageBlock(url, altText, "", titleObject))
}

// Context finalizes the implicit section and appends a context line.
func (b *Builder) Context(text string) {
	if !b.readyBlock("context") {
		return
	}
	if text == "" {
		b.fail(constructionErrorf("context", "context text must not be empty"))
		return
	}
	b.flush()
	b.blocks = append(b.blocks, slack.NewContextBlock("", markdownText(b.enrich(text))))
}

// Text appends to the implicit section. See Section.Text.
func (b *Builder) Text(msg string) { b.pending.Text(msg) }

// Markdown appends converted CommonMark to the implicit section.
func (b *Builder) Markdown(md string) { b.pending.Markdown(md) }

// BlankLine appends an empty line to the implicit section.
func (b *Builder) BlankLine() { b.pending.BlankLine() }

// UL appends a bulleted list to the implicit section.
func (b *Builder) UL(items []string) { b.pending.UL(items) }

// OL appends a numbered list to the implicit section.
func (b *Builder) OL(items []string) { b.pending.OL(items) }

// ListItem adds a field to the implicit section.
func (b *Builder) ListItem(title, value string) { b.pending.ListItem(title, value) }

// LinkButton sets the implicit section's accessory to a button.
func (b *Builder) LinkButton(label, target string, style ButtonStyle) {
	b.pending.LinkButton(label, target, style)
}

// AccessoryImage sets the implicit section's accessory to an image.
func (b *Builder) AccessoryImage(url, altText string) {
	b.pending.AccessoryImage(url, altText)
}

// BotName overrides the display name the message is sent under.
func (b *Builder) BotName(name string) {
	if b.ready("bot_name") {
		b.botName = name
	}
}

// BotIcon overrides the icon the message is sent with: an emoji like
// ":robot_face:" or an image URL.
func (b *Builder) BotIcon(icon string) {
	if b.ready("bot_icon") {
		b.botIcon = icon
	}
}

// NotificationText sets the fallback text shown in notifications. A
// second call replaces the first and emits a warning.
func (b *Builder) NotificationText(msg string) {
	if !b.ready("notification_text") {
		return
	}
	if b.haveNotification {
		b.warn(WarnNotificationOverwritten, -1, "notification text was already set; replacing it")
	}
	b.notification = msg
	b.haveNotification = true
}

// Call invokes the extension registered under name.
func (b *Builder) Call(name string, args ...string) {
	if !b.ready(name) {
		return
	}
	extension, ok := b.options.Extensions[name]
	if !ok {
		b.fail(constructionErrorf(name, "unknown operation"))
		return
	}
	if err := extension(b, args); err != nil {
		if b.err != nil {
			return
		}
		if IsConstructionError(err) {
			b.fail(err)
			return
		}
		b.fail(&ConstructionError{Op: name, Message: "extension failed", Err: err})
	}
}

// Render finalizes the implicit section and returns the document. A
// document with no blocks is a construction error. Calling Render again
// returns the same document.
func (b *Builder) Render() (*Document, error) {
	if b.document != nil {
		return b.document, nil
	}
	if b.err != nil {
		return nil, b.err
	}
	b.flush()
	if len(b.blocks) == 0 {
		b.fail(constructionErrorf("render", "message has no content"))
		return nil, b.err
	}

	document := &Document{
		Blocks:  b.blocks,
		BotName: b.botName,
		BotIcon: b.botIcon,
	}
	if b.haveNotification {
		document.NotificationText = b.notification
	} else {
		for _, text := range b.sectionTexts {
			if text != "" {
				document.NotificationText = text
				break
			}
		}
	}
	b.document = document
	return document, nil
}

// flush pushes the implicit section when it has content and starts a new
// one either way.
func (b *Builder) flush() {
	if b.pending.HasContent() {
		b.push(b.pending)
	}
	b.pending = newSection(b)
}

func (b *Builder) push(section *Section) {
	section.added = true
	b.sectionTexts = append(b.sectionTexts, section.text())
	b.blocks = append(b.blocks, section.render())
}

// ready reports whether op may proceed. Operations after a failure or
// after Render are refused.
func (b *Builder) ready(op string) bool {
	if b.err != nil {
		return false
	}
	if b.document != nil {
		b.fail(constructionErrorf(op, "message has already been rendered"))
		return false
	}
	return true
}

// readyBlock is ready for operations that start a new block. They are
// refused while an explicit section's body is running.
func (b *Builder) readyBlock(op string) bool {
	if !b.ready(op) {
		return false
	}
	if b.open != nil {
		b.fail(constructionErrorf(op, "can't start a new block inside a section"))
		return false
	}
	return true
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) enrich(text string) string {
	return enrich(b.ctx, b.options.Lookup, b.logger, text)
}

func (b *Builder) warn(kind WarningKind, section int, detail string) {
	warning := Warning{Kind: kind, Section: section, Detail: detail}
	if b.options.Warn != nil {
		b.options.Warn(warning)
		return
	}
	b.logger.Warn(detail, "kind", string(kind), "section", section)
}
