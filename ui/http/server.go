// CLASSIFICATION: COMMUNITY
// Filename: server.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-16
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server wraps the HTTP server and router.
type Server struct {
	cfg    Config
	log    logrus.FieldLogger
	errLog *logrus.Entry
	router *chi.Mux
}

// New returns an initialized server.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{cfg: cfg, log: logger, errLog: pipeEntry(logger)}
	s.router = s.routes()
	return s
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Addr returns the listening address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, strconv.Itoa(s.cfg.Port))
}

// Listen binds the TCP listener. A port already in use is reported as an
// error; there is no retry or fallback port.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", s.Addr())
	}
	return ln, nil
}

// Start binds the listener and serves until ctx is done.
func (s *Server) Start(ctx context.Context, banner io.Writer) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, banner)
}

// Serve writes the startup banner and serves on ln until ctx is done. A
// shutdown triggered by ctx is not an error.
func (s *Server) Serve(ctx context.Context, ln net.Listener, banner io.Writer) error {
	errLog := s.errLog.WriterLevel(logrus.WarnLevel)
	defer errLog.Close()

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          log.New(errLog, "", 0),
	}

	stop := make(chan struct{})
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		select {
		case <-ctx.Done():
		case <-stop:
			return
		}
		ctxTo, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxTo); err != nil {
			s.log.WithError(err).Warn("shutdown")
		}
	}()

	if banner != nil {
		fmt.Fprintf(banner, "UI app running at %s\n", URL(listenPort(ln, s.cfg.Port)))
	}
	err := srv.Serve(ln)
	close(stop)
	<-drained
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "serve")
}

// pipeEntry returns an entry that can back http.Server.ErrorLog. Loggers other
// than logrus' own types fall back to the standard logger.
func pipeEntry(l logrus.FieldLogger) *logrus.Entry {
	switch v := l.(type) {
	case *logrus.Entry:
		return v
	case *logrus.Logger:
		return logrus.NewEntry(v)
	default:
		return logrus.NewEntry(logrus.StandardLogger())
	}
}

func listenPort(ln net.Listener, fallback int) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return fallback
}
