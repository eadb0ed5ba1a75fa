// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package concurrent provides the goroutine lifecycle conventions shared by the long-running
components of this module: a Runnable is started with a WaitGroup and a shutdown channel, and
Await runs a set of them until the process is signaled.
*/
package concurrent
