// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	stdlog "log"
	"net"
	"net/http"
	"sync"

	"github.com/go-kit/log"

	"github.com/RomeuG/CountDownTimer/concurrent"
	"github.com/RomeuG/CountDownTimer/logging"
)

// Server is a concurrent.Runnable that serves HTTP until shut down
type Server struct {
	options *Options
	logger  log.Logger
	server  *http.Server

	lock     sync.Mutex
	listener net.Listener
}

var _ concurrent.Runnable = (*Server)(nil)

// NewErrorLog creates a stdlib logger, appropriate for http.Server.ErrorLog, that writes to the given go-kit logger
func NewErrorLog(logger log.Logger) *stdlog.Logger {
	return stdlog.New(
		log.NewStdlibAdapter(logging.Error(logger)),
		"",
		0,
	)
}

// New creates a Server for the given handler.  Nothing is bound until Run.
func New(o *Options, logger log.Logger, handler http.Handler) *Server {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	read, write, idle := o.timeouts()
	return &Server{
		options: o,
		logger:  logger,
		server: &http.Server{
			Addr:         o.address(),
			Handler:      handler,
			ReadTimeout:  read,
			WriteTimeout: write,
			IdleTimeout:  idle,
			ErrorLog:     NewErrorLog(logger),
		},
	}
}

// Addr returns the bound address, or nil if Run has not succeeded
func (s *Server) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener != nil {
		return s.listener.Addr()
	}

	return nil
}

// Run binds the listener, so that address problems are returned immediately, and then serves
// on a separate goroutine.  When shutdown is closed, the server is gracefully shut down.
func (s *Server) Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}

	s.lock.Lock()
	s.listener = listener
	s.lock.Unlock()

	logging.Info(s.logger).Log(logging.MessageKey(), "starting server", "address", listener.Addr().String(), "tls", s.options.tls())

	waitGroup.Add(2)
	go func() {
		defer waitGroup.Done()

		var err error
		if s.options.tls() {
			err = s.server.ServeTLS(listener, s.options.CertificateFile, s.options.KeyFile)
		} else {
			err = s.server.Serve(listener)
		}

		if err != http.ErrServerClosed {
			logging.Error(s.logger).Log(logging.MessageKey(), "server exited", logging.ErrorKey(), err)
		}
	}()

	go func() {
		defer waitGroup.Done()
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), s.options.shutdownTimeout())
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			logging.Error(s.logger).Log(logging.MessageKey(), "unable to shut down server cleanly", logging.ErrorKey(), err)
		} else {
			logging.Info(s.logger).Log(logging.MessageKey(), "server stopped")
		}
	}()

	return nil
}
