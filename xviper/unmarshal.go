// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type defaulter interface {
	SetDefault(string, interface{})
}

// Defaults is a set of configuration keys and their default values
type Defaults map[string]interface{}

func ApplyDefaults(d defaulter, v Defaults) {
	for key, value := range v {
		d.SetDefault(key, value)
	}
}

// DecodeHook is the hook used by Unmarshal.  Durations may be written as "1m30s",
// lists as comma-delimited strings, and any encoding.TextUnmarshaler is honored.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// Unmarshal decodes a (possibly nil) Viper instance into out using DecodeHook.  A nil
// Viper leaves out untouched.
func Unmarshal(v *viper.Viper, out interface{}) error {
	if v == nil {
		return nil
	}

	return v.Unmarshal(out, viper.DecodeHook(DecodeHook()))
}
