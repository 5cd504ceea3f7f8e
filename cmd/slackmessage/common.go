// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/slackmessage/cmd/slackmessage/cli"
	"github.com/bureau-foundation/slackmessage/lib/config"
	"github.com/bureau-foundation/slackmessage/lib/script"
	"github.com/bureau-foundation/slackmessage/messaging"
)

// profileParams selects the configuration file and profile.
type profileParams struct {
	cli.Verbosity
	Config  string `json:"config"  flag:"config"    desc:"configuration file (default: $SLACKMESSAGE_CONFIG)"`
	Profile string `json:"profile" flag:"profile,p" desc:"profile handle (default: default)"`
}

// scriptParams collects script variables.
type scriptParams struct {
	Vars []string `json:"vars" flag:"var" desc:"script variable as NAME=VALUE (repeatable)"`
}

// loadConfig reads the configuration named by --config or
// SLACKMESSAGE_CONFIG.
func (env *environment) loadConfig(params *profileParams, logger *slog.Logger) (*config.Config, error) {
	path := params.Config
	if path == "" {
		path = env.getenv("SLACKMESSAGE_CONFIG")
	}
	if path == "" {
		return nil, &config.Error{Message: "no configuration file: set SLACKMESSAGE_CONFIG or pass --config"}
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	return cfg, nil
}

// newClient creates a messaging client for the selected profile. The
// caller closes it.
func (env *environment) newClient(params *profileParams, logger *slog.Logger) (*messaging.Client, error) {
	cfg, err := env.loadConfig(params, logger)
	if err != nil {
		return nil, err
	}
	profile, err := cfg.Profile(params.Profile)
	if err != nil {
		return nil, err
	}
	return messaging.NewClient(messaging.ClientConfig{
		Profile:    profile,
		APIURL:     cfg.APIURL,
		HTTPClient: env.httpClient,
		Debug:      cfg.Debug,
		Logger:     logger.With("profile", profile.Handle),
		Clock:      env.clock,
	})
}

// target returns to, or the client's default channel when to is empty.
func target(client *messaging.Client, to string) (string, error) {
	if to != "" {
		return to, nil
	}
	return client.DefaultChannel()
}

// loadScript reads the script named by args[0] ("-" for stdin) and
// expands its variables.
func (env *environment) loadScript(args []string, params *scriptParams) (*script.Script, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected one script path (or - for stdin), got %d arguments", len(args))
	}

	var parsed *script.Script
	if args[0] == "-" {
		data, err := io.ReadAll(env.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading script from stdin: %w", err)
		}
		if parsed, err = script.Parse(data); err != nil {
			return nil, err
		}
	} else {
		var err error
		if parsed, err = script.ReadFile(args[0]); err != nil {
			return nil, err
		}
	}

	variables, err := parseVars(params.Vars)
	if err != nil {
		return nil, err
	}
	return parsed.Expand(variables)
}

// parseVars turns NAME=VALUE pairs into a map.
func parseVars(pairs []string) (map[string]string, error) {
	variables := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --var %q: expected NAME=VALUE", pair)
		}
		variables[name] = value
	}
	return variables, nil
}

// saveHandle writes handle to path as CBOR.
func saveHandle(path string, handle *messaging.Handle) error {
	data, err := handle.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing handle: %w", err)
	}
	return nil
}

// loadHandle reads a handle file written by saveHandle, returning the
// raw bytes as well for diagnostics.
func loadHandle(path string) (*messaging.Handle, []byte, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("--handle is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading handle: %w", err)
	}
	var handle messaging.Handle
	if err := handle.UnmarshalBinary(data); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return &handle, data, nil
}

// reportHandle saves handle when savePath is set and prints it.
func (env *environment) reportHandle(output *cli.JSONOutput, handle *messaging.Handle, savePath string) error {
	if savePath != "" {
		if err := saveHandle(savePath, handle); err != nil {
			return err
		}
	}
	if done, err := output.EmitJSON(env.stdout, handle); done {
		return err
	}
	fmt.Fprintln(env.stdout, handle.String())
	return nil
}
