// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-16
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package static serves a document root over HTTP. Directories are only
// reachable through their index file; listings are never produced.
package static

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
)

// IndexFile is the file served for a directory request.
const IndexFile = "index.html"

// FileHandler returns an HTTP handler that serves files from dir. The root is
// resolved by the filesystem on every request, so it may appear or vanish
// while the server runs. An empty dir serves nothing.
func FileHandler(dir string) http.Handler {
	if dir == "" {
		return http.NotFoundHandler()
	}
	return newHandler(http.Dir(dir))
}

func newHandler(root http.FileSystem) http.Handler {
	return http.FileServer(documentRoot{root})
}

// documentRoot wraps an http.FileSystem so that a directory only opens when it
// holds a regular index file, and unreadable entries look absent.
type documentRoot struct {
	root http.FileSystem
}

func (d documentRoot) Open(name string) (http.File, error) {
	f, err := d.root.Open(name)
	if err != nil {
		return nil, notFound(err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, notFound(err)
	}
	if !st.IsDir() {
		return f, nil
	}
	if err := d.checkIndex(name); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (d documentRoot) checkIndex(dir string) error {
	idx, err := d.root.Open(path.Join(dir, IndexFile))
	if err != nil {
		return notFound(err)
	}
	defer idx.Close()
	st, err := idx.Stat()
	if err != nil {
		return notFound(err)
	}
	if !st.Mode().IsRegular() {
		return fs.ErrNotExist
	}
	return nil
}

// notFound collapses every open or stat failure onto fs.ErrNotExist so that
// http.FileServer answers 404, never 403 or 500.
func notFound(err error) error {
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return fs.ErrNotExist
}
