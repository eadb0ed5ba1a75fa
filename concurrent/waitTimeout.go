// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package concurrent

import (
	"sync"
	"time"
)

// WaitTimeout performs a timed wait on a given sync.WaitGroup.  It returns true if the
// WaitGroup completed before the timeout.
func WaitTimeout(waitGroup *sync.WaitGroup, timeout time.Duration) bool {
	success := make(chan struct{})
	go func() {
		defer close(success)
		waitGroup.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-success:
		return true
	case <-timer.C:
		return false
	}
}
