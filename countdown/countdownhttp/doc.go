// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package countdownhttp exposes a countdown.Timer over HTTP.

Every handler runs its work through an Executor, normally the countdown.Loop that drives the
timer, so that HTTP goroutines never touch the timer directly.

	GET  /timer           the current countdown.Snapshot
	POST /timer/start     starts a run, see StartRequest
	POST /timer/stop      stops the timer
	PUT  /timer/limits    changes the thresholds, see LimitsRequest
	GET  /metrics         Prometheus exposition, only when a Gatherer is configured

Failures are written as JSON of the form {"code": 400, "message": "..."}.
*/
package countdownhttp
