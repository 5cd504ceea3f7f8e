// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddProfileDefaultsHandle(t *testing.T) {
	cfg := New()
	cfg.AddProfile(Profile{APIToken: "xoxb-1"})

	profile, err := cfg.Profile("")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Handle != DefaultHandle {
		t.Errorf("Handle = %q, want %q", profile.Handle, DefaultHandle)
	}
	if profile.APIToken != "xoxb-1" {
		t.Errorf("APIToken = %q", profile.APIToken)
	}
}

func TestAddProfileRedefinitionWarns(t *testing.T) {
	var logs bytes.Buffer
	cfg := New()
	cfg.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	cfg.AddProfile(Profile{Handle: "alerts", APIToken: "first"})
	if logs.Len() != 0 {
		t.Fatalf("unexpected warning on first definition: %s", logs.String())
	}
	cfg.AddProfile(Profile{Handle: "alerts", APIToken: "second"})

	if !strings.Contains(logs.String(), "profile=alerts") {
		t.Errorf("warning does not name profile: %s", logs.String())
	}
	profile, _ := cfg.Profile("alerts")
	if profile.APIToken != "second" {
		t.Errorf("APIToken = %q, want second definition to win", profile.APIToken)
	}
}

func TestUnknownProfile(t *testing.T) {
	cfg := New()
	_, err := cfg.Profile("nope")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Fatalf("error = %v, want ErrUnknownProfile", err)
	}
	if !IsConfigurationError(err) {
		t.Error("IsConfigurationError = false")
	}
	if !strings.Contains(err.Error(), `"nope"`) {
		t.Errorf("error %q does not name the handle", err)
	}
}

func TestReset(t *testing.T) {
	cfg := New()
	cfg.AddProfile(Profile{APIToken: "x"})
	cfg.Reset()
	if len(cfg.Handles()) != 0 {
		t.Errorf("Handles after Reset = %v", cfg.Handles())
	}
}

func TestParse(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenFile, []byte("xoxb-from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEST_SLACK_TOKEN", "xoxb-from-env")
	t.Setenv("TEST_TOKEN_FILE", tokenFile)

	cfg, err := Parse([]byte(`
api_url: ${TEST_SLACK_URL:-http://localhost:9999/api}/
debug: true
profiles:
  default:
    api_token: ${TEST_SLACK_TOKEN}
    name: Deploy Bot
    icon: ":rocket:"
    default_channel: "#deploys"
  alerts:
    api_token_file: ${TEST_TOKEN_FILE}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.APIURL != "http://localhost:9999/api" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if !cfg.Debug {
		t.Error("Debug = false")
	}
	if got := cfg.Handles(); len(got) != 2 || got[0] != "alerts" || got[1] != "default" {
		t.Errorf("Handles = %v", got)
	}

	def, _ := cfg.Profile(DefaultHandle)
	if def.APIToken != "xoxb-from-env" || def.Name != "Deploy Bot" || def.DefaultChannel != "#deploys" {
		t.Errorf("default profile = %+v", def)
	}
	alerts, _ := cfg.Profile("alerts")
	if alerts.APIToken != "xoxb-from-file" {
		t.Errorf("alerts token = %q", alerts.APIToken)
	}
	if alerts.Handle != "alerts" {
		t.Errorf("alerts handle = %q", alerts.Handle)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseDefaultsAPIURL(t *testing.T) {
	cfg, err := Parse([]byte("profiles: {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
}

func TestParseMissingTokenFile(t *testing.T) {
	_, err := Parse([]byte(`
profiles:
  default:
    api_token_file: /nonexistent/slackmessage/token
`))
	if !IsConfigurationError(err) {
		t.Fatalf("error = %v, want configuration error", err)
	}
}

func TestLoadRequiresEnv(t *testing.T) {
	t.Setenv("SLACKMESSAGE_CONFIG", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without SLACKMESSAGE_CONFIG")
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slackmessage.yaml")
	if err := os.WriteFile(path, []byte("profiles:\n  default:\n    api_token: abc\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SLACKMESSAGE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	profile, err := cfg.Profile("")
	if err != nil || profile.APIToken != "abc" {
		t.Errorf("profile = %+v, err = %v", profile, err)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.AddProfile(Profile{Handle: "notoken"})
	cfg.AddProfile(Profile{Handle: "badicon", APIToken: "x", Icon: "robot face"})

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate succeeded")
	}
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("error does not wrap ErrMissingToken: %v", err)
	}
	if !errors.Is(err, ErrInvalidIcon) {
		t.Errorf("error does not wrap ErrInvalidIcon: %v", err)
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("TEST_EXPAND_SET", "value")

	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"${TEST_EXPAND_SET}", "value"},
		{"${TEST_EXPAND_UNSET}", ""},
		{"${TEST_EXPAND_UNSET:-fallback}", "fallback"},
		{"${TEST_EXPAND_SET:-fallback}", "value"},
		{"a/${TEST_EXPAND_SET}/b", "a/value/b"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandVars(tt.input); got != tt.want {
				t.Errorf("expandVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyIcon(t *testing.T) {
	tests := []struct {
		icon    string
		want    IconKind
		wantErr bool
	}{
		{":robot_face:", IconEmoji, false},
		{":+1:", 0, true},
		{"https://example.com/icon.png", IconURL, false},
		{"example.com/icon.png", IconURL, false},
		{"http://localhost:8080/a.png", 0, true},
		{"robot face", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			got, err := ClassifyIcon(tt.icon)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIcon) {
					t.Errorf("ClassifyIcon(%q) error = %v, want ErrInvalidIcon", tt.icon, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ClassifyIcon(%q): %v", tt.icon, err)
			}
			if got != tt.want {
				t.Errorf("ClassifyIcon(%q) = %v, want %v", tt.icon, got, tt.want)
			}
		})
	}
}
