// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Ticker is the analog of time.Ticker.  Ticks are dropped if the receiver falls behind.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}
