// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

import "fmt"

// State is the run state of a Timer
type State uint8

const (
	// Stopped is both the initial state and the state after Stop or expiry
	Stopped State = iota
	Running

	InvalidStateString string = "!!INVALID TIMER STATE!!"
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return InvalidStateString
	}
}

// MarshalText allows a State to appear in JSON and other text encodings by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "stopped":
		*s = Stopped
	case "running":
		*s = Running
	default:
		return fmt.Errorf("invalid timer state: %q", text)
	}

	return nil
}
