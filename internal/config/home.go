// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-oxalis/internal/logger"
	"github.com/caarlos0/env/v11"
)

// homeOverrides carries the environment-driven overrides consulted before any
// conventional location is tried.
type homeOverrides struct {
	// Home is an absolute path naming the oxalis home directory explicitly.
	// Env: OXALIS_HOME
	Home string `env:"OXALIS_HOME"`
}

// LocateHome determines the oxalis home directory, the single base directory
// under which the global properties file and default file-backed values
// (such as the keystore) live.
//
// Resolution order, first hit wins:
//  1. the OXALIS_HOME environment variable;
//  2. ".oxalis" under the current user's home directory;
//  3. "oxalis" under the system temporary directory.
//
// The directory is only reported, never created; whether it actually exists
// is checked later, when the properties file underneath it is opened.
func LocateHome(log *logger.Logger) (string, error) {
	var overrides homeOverrides
	if err := env.Parse(&overrides); err != nil {
		return "", fmt.Errorf("reading home directory override: %w", err)
	}

	home := resolveHome(overrides, os.UserHomeDir)
	log.Info().Str("home", home).Msg("oxalis home directory")

	return home, nil
}

func resolveHome(overrides homeOverrides, userHome func() (string, error)) string {
	if overrides.Home != "" {
		return overrides.Home
	}

	if dir, err := userHome(); err == nil && dir != "" {
		return filepath.Join(dir, ".oxalis")
	}

	return filepath.Join(os.TempDir(), "oxalis")
}
