// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"regexp"
)

// IconKind says which wire field an icon value belongs in.
type IconKind int

const (
	// IconEmoji is sent as icon_emoji.
	IconEmoji IconKind = iota + 1
	// IconURL is sent as icon_url.
	IconURL
)

func (k IconKind) String() string {
	switch k {
	case IconEmoji:
		return "emoji"
	case IconURL:
		return "url"
	default:
		return "unknown"
	}
}

var (
	emojiPattern = regexp.MustCompile(`^:\w+:$`)

	// URLPattern matches anything shaped like a hostname with an optional
	// scheme, port, and path. It is deliberately loose: it exists to catch
	// values that are obviously not URLs.
	URLPattern = regexp.MustCompile(`(^|\s)((https?://)?[\w-]+(\.[\w-]+)+\.?(:\d+)?(/\S*)?)`)
)

// ClassifyIcon decides whether icon is an emoji reference or an image
// URL. Any other value is an error wrapping ErrInvalidIcon.
func ClassifyIcon(icon string) (IconKind, error) {
	switch {
	case emojiPattern.MatchString(icon):
		return IconEmoji, nil
	case URLPattern.MatchString(icon):
		return IconURL, nil
	default:
		return 0, &Error{
			Message: fmt.Sprintf("don't know how to handle icon %q: expected an emoji like :robot_face: or an image URL", icon),
			Err:     ErrInvalidIcon,
		}
	}
}
