// Accelerator Finder - Solution Accelerator Search and Recommendation
// Copyright 2026 FlorKi610
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/FlorKi610/accelerator-finder

package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvPathEnvVar names an explicit .env file to load.
const DotEnvPathEnvVar = "DOTENV_PATH"

// LoadDotEnv loads the first .env file found into the process environment.
// Variables already set win over the file. It returns the loaded path, or ""
// when no file exists.
func LoadDotEnv(paths ...string) (string, error) {
	if explicit := os.Getenv(DotEnvPathEnvVar); explicit != "" {
		paths = []string{explicit}
	} else if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", err
		}
		if err := godotenv.Load(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}
