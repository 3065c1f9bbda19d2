// CLASSIFICATION: COMMUNITY
// Filename: config.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-16
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPort is the compiled-in listen port.
	DefaultPort = 8080
	// DefaultBind listens on all interfaces.
	DefaultBind = ""
	// PublicDirName is the document root, relative to the executable.
	PublicDirName = "public"
)

// Config holds server configuration.
type Config struct {
	Bind    string
	Port    int
	RootDir string
	// Logger receives server errors. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// DefaultRootDir returns the public directory that sits next to the running
// executable.
func DefaultRootDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), PublicDirName), nil
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() (Config, error) {
	root, err := DefaultRootDir()
	if err != nil {
		return Config{}, err
	}
	return Config{Bind: DefaultBind, Port: DefaultPort, RootDir: root}, nil
}

// URL is the address announced in the startup banner.
func URL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}
