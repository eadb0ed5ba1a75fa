// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/RomeuG/CountDownTimer/xviper"
)

const (
	DefaultAddress         = ":8080"
	DefaultShutdownTimeout = 5 * time.Second

	// ServerKey is the Viper subkey for server configuration
	ServerKey = "server"
)

// Options describes an HTTP server.  A nil Options is valid and produces a plain HTTP server
// on DefaultAddress.
type Options struct {
	// Address is the bind address.  Port 0 selects an ephemeral port.
	Address string

	// CertificateFile and KeyFile enable TLS when both are set
	CertificateFile string
	KeyFile         string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// ShutdownTimeout bounds how long a graceful shutdown may take
	ShutdownTimeout time.Duration
}

func (o *Options) address() string {
	if o != nil && len(o.Address) > 0 {
		return o.Address
	}

	return DefaultAddress
}

func (o *Options) tls() bool {
	return o != nil && len(o.CertificateFile) > 0 && len(o.KeyFile) > 0
}

func (o *Options) shutdownTimeout() time.Duration {
	if o != nil && o.ShutdownTimeout > 0 {
		return o.ShutdownTimeout
	}

	return DefaultShutdownTimeout
}

func (o *Options) timeouts() (read, write, idle time.Duration) {
	if o != nil {
		read, write, idle = o.ReadTimeout, o.WriteTimeout, o.IdleTimeout
	}

	return
}

// FromViper reads Options from the ServerKey subtree of the given Viper
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := xviper.Unmarshal(v.Sub(ServerKey), o); err != nil {
			return nil, fmt.Errorf("unable to read server configuration: %w", err)
		}
	}

	return o, nil
}
