// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/slackmessage/lib/secret"
)

// DefaultHandle is the profile used when a caller does not name one.
const DefaultHandle = "default"

// DefaultAPIURL is the base URL of the Slack Web API.
const DefaultAPIURL = "https://slack.com/api"

// Profile is one set of credentials and presentation defaults.
type Profile struct {
	// Handle is the profile's name. Set from the map key when loading a
	// file.
	Handle string `yaml:"-"`

	// APIToken is the bot token sent as a bearer credential.
	APIToken string `yaml:"api_token"`

	// APITokenFile names a file holding the token. Read at load time when
	// APIToken is empty.
	APITokenFile string `yaml:"api_token_file"`

	// Name is the bot display name sent as "username".
	Name string `yaml:"name"`

	// Icon is an emoji reference (":robot_face:") or image URL.
	Icon string `yaml:"icon"`

	// DefaultChannel is the target used by PostAs and ScheduleAs. May be
	// a channel name, channel ID, or an email address.
	DefaultChannel string `yaml:"default_channel"`
}

// Config is the full set of profiles plus API-wide settings.
type Config struct {
	// APIURL is the Slack Web API base URL. Defaults to DefaultAPIURL.
	APIURL string `yaml:"api_url"`

	// Debug includes serialized block JSON in invalid-blocks failures.
	Debug bool `yaml:"debug"`

	// Profiles maps handle to profile.
	Profiles map[string]Profile `yaml:"profiles"`

	// Logger receives profile redefinition warnings. Defaults to
	// slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// New returns an empty configuration pointing at the public Slack API.
func New() *Config {
	return &Config{
		APIURL:   DefaultAPIURL,
		Profiles: make(map[string]Profile),
	}
}

// AddProfile stores profile under its handle (DefaultHandle when empty).
// Redefining an existing handle replaces it and logs a warning.
func (c *Config) AddProfile(profile Profile) {
	if profile.Handle == "" {
		profile.Handle = DefaultHandle
	}
	if c.Profiles == nil {
		c.Profiles = make(map[string]Profile)
	}
	if _, exists := c.Profiles[profile.Handle]; exists {
		c.logger().Warn("overriding slackmessage profile",
			"kind", "profile_redefined",
			"profile", profile.Handle,
		)
	}
	c.Profiles[profile.Handle] = profile
}

// Profile returns the profile registered under handle. An empty handle
// means DefaultHandle. Unknown handles are a configuration error wrapping
// ErrUnknownProfile.
func (c *Config) Profile(handle string) (Profile, error) {
	if handle == "" {
		handle = DefaultHandle
	}
	profile, ok := c.Profiles[handle]
	if !ok {
		return Profile{}, &Error{
			Profile: handle,
			Message: fmt.Sprintf("unknown slackmessage profile %q", handle),
			Err:     ErrUnknownProfile,
		}
	}
	profile.Handle = handle
	return profile, nil
}

// Handles returns the registered profile handles in sorted order.
func (c *Config) Handles() []string {
	handles := make([]string, 0, len(c.Profiles))
	for handle := range c.Profiles {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	return handles
}

// Reset removes every profile. Intended for test setup.
func (c *Config) Reset() {
	c.Profiles = make(map[string]Profile)
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.APIURL == "" {
		errs = append(errs, &Error{Message: "api_url is required"})
	} else if _, err := url.Parse(c.APIURL); err != nil {
		errs = append(errs, &Error{Message: fmt.Sprintf("invalid api_url %q", c.APIURL), Err: err})
	}

	for _, handle := range c.Handles() {
		profile := c.Profiles[handle]
		if profile.APIToken == "" {
			errs = append(errs, &Error{
				Profile: handle,
				Message: fmt.Sprintf("profile %q has no api_token", handle),
				Err:     ErrMissingToken,
			})
		}
		if profile.Icon != "" {
			if _, err := ClassifyIcon(profile.Icon); err != nil {
				errs = append(errs, &Error{
					Profile: handle,
					Message: fmt.Sprintf("profile %q has an icon that is neither an emoji nor a URL: %q", handle, profile.Icon),
					Err:     ErrInvalidIcon,
				})
			}
		}
	}

	return errors.Join(errs...)
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Load loads configuration from the file named by SLACKMESSAGE_CONFIG.
func Load() (*Config, error) {
	path := os.Getenv("SLACKMESSAGE_CONFIG")
	if path == "" {
		return nil, &Error{Message: "SLACKMESSAGE_CONFIG environment variable not set; " +
			"set it to the path of your slackmessage.yaml, or use --config"}
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("reading %s", path), Err: err}
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expands environment references, and
// resolves api_token_file entries.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &Error{Message: "parsing configuration", Err: err}
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}

	cfg.APIURL = strings.TrimRight(expandVars(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	for handle, profile := range cfg.Profiles {
		profile.Handle = handle
		profile.APIToken = expandVars(profile.APIToken)
		profile.APITokenFile = expandVars(profile.APITokenFile)
		if profile.APIToken == "" && profile.APITokenFile != "" {
			token, err := secret.ReadTokenFile(profile.APITokenFile)
			if err != nil {
				return nil, &Error{Profile: handle, Message: "reading api_token_file", Err: err}
			}
			profile.APIToken = token.String()
			token.Close()
		}
		cfg.Profiles[handle] = profile
	}

	return cfg, nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars replaces ${VAR} and ${VAR:-default} with environment values.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}
