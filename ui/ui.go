// CLASSIFICATION: COMMUNITY
// Filename: ui.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-16
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package ui

import (
	"context"
	"io"
	"net/http"

	uihttp "webapp/ui/http"
)

// Server defines the methods the UI asset server exposes.
type Server interface {
	Start(ctx context.Context, banner io.Writer) error
	Router() http.Handler
}

// New returns a Server backed by the HTTP server implementation.
func New(cfg uihttp.Config) Server {
	return uihttp.New(cfg)
}
