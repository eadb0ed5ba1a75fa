// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultNameFlag = "name"
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance by New or Configure.
type Option func(*viper.Viper) error

// AddConfigPaths adds each path to the set Viper searches for its configuration file.
func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		return nil
	}
}

func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfig uses the value of the file flag, if set, as the fully-qualified configuration file.
// Failing that, the value of the name flag, if set, becomes the configuration name.  Flags that
// are missing from the set or empty are ignored.
func BindConfig(fs *pflag.FlagSet, fileFlag, nameFlag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(fileFlag); f != nil && len(f.Value.String()) > 0 {
			v.SetConfigFile(f.Value.String())
		} else if f := fs.Lookup(nameFlag); f != nil && len(f.Value.String()) > 0 {
			v.SetConfigName(f.Value.String())
		}

		return nil
	}
}

// ReadInConfig reads the configuration.  When optional is true, the absence of any configuration
// file is not an error, which lets an application run purely from defaults and flags.
func ReadInConfig(optional bool) Option {
	return func(v *viper.Viper) error {
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if optional && errors.As(err, &notFound) {
			return nil
		}

		return err
	}
}

// StdOptions is the standard set of steps for an application: the *nix configuration paths,
// environment variables prefixed with the application name, the application name as the
// configuration name, and all flags bound.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		_, err := Configure(
			v,
			AddConfigPaths(
				fmt.Sprintf("/etc/%s", applicationName),
				fmt.Sprintf("$HOME/.%s", applicationName),
				".",
			),
			SetEnvPrefix(applicationName),
			AutomaticEnv,
			SetConfigName(applicationName),
			BindPFlags(fs),
		)

		return err
	}
}

func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

// Configure applies each option in order, stopping at the first error.
func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}
