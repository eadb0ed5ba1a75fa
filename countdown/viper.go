// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/spf13/viper"

	"github.com/RomeuG/CountDownTimer/xviper"
)

const (
	// CountdownKey is the Viper subkey under which countdown configuration is stored.
	// NewOptions *does not* assume this key.
	CountdownKey = "countdown"
)

// Sub returns the standard child Viper, using CountdownKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(CountdownKey)
	}

	return nil
}

// NewOptions unmarshals an Options from a (possibly nil) Viper instance.  Only the configurable
// values, i.e. the limits, the initial time and the tick period, are read.  Durations may be given
// as strings such as "1s".
func NewOptions(logger log.Logger, v *viper.Viper) (*Options, error) {
	o := new(Options)
	if err := xviper.Unmarshal(v, o); err != nil {
		return nil, fmt.Errorf("unable to read countdown configuration: %w", err)
	}

	o.Logger = logger
	return o, nil
}
