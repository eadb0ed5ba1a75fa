// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package concurrent

import (
	"os"
	"sync"
)

// Runnable represents any operation that can spawn zero or more goroutines.
type Runnable interface {
	// Run starts this operation.  Implementations must call waitGroup.Add before spawning
	// each goroutine and waitGroup.Done when it exits, and every spawned goroutine must exit
	// once the shutdown channel is closed.  An error means nothing was started.
	Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error
}

// RunnableFunc is a function type that implements Runnable
type RunnableFunc func(*sync.WaitGroup, <-chan struct{}) error

func (r RunnableFunc) Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
	return r(waitGroup, shutdown)
}

// RunnableSet runs each of its elements in order, stopping at the first error.
type RunnableSet []Runnable

func (set RunnableSet) Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
	for _, operation := range set {
		if err := operation.Run(waitGroup, shutdown); err != nil {
			return err
		}
	}

	return nil
}

// Execute creates the necessary synchronization objects and then invokes Run.
// Callers close the returned shutdown channel to stop the runnable.
func Execute(runnable Runnable) (waitGroup *sync.WaitGroup, shutdown chan struct{}, err error) {
	waitGroup = &sync.WaitGroup{}
	shutdown = make(chan struct{})
	err = runnable.Run(waitGroup, shutdown)
	return
}

// Await uses Execute to invoke a runnable, then blocks until a signal arrives.  The runnable
// is then shut down and Await waits for all of its goroutines to exit.  If the runnable fails
// to start, anything it did start is shut down before the error is returned.
func Await(runnable Runnable, signals <-chan os.Signal) (os.Signal, error) {
	waitGroup, shutdown, err := Execute(runnable)
	if err != nil {
		close(shutdown)
		waitGroup.Wait()
		return nil, err
	}

	s := <-signals
	close(shutdown)
	waitGroup.Wait()
	return s, nil
}
