// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdownhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/RomeuG/CountDownTimer/countdown"
)

// ErrorBody is the JSON body written for any failed request
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WriteError writes a JSON ErrorBody with the given status code.  The value is stringized
// using the default rules of the fmt package.
func WriteError(response http.ResponseWriter, code int, value interface{}) error {
	return writeJSON(response, code, ErrorBody{Code: code, Message: fmt.Sprint(value)})
}

// WriteErrorf is the printf-style variant of WriteError
func WriteErrorf(response http.ResponseWriter, code int, format string, parameters ...interface{}) error {
	return WriteError(response, code, fmt.Sprintf(format, parameters...))
}

// executorStatus maps an error from an Executor onto a response code
func executorStatus(err error) int {
	if errors.Is(err, countdown.ErrLoopNotRunning) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func writeJSON(response http.ResponseWriter, code int, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(code)
	_, err = response.Write(data)
	return err
}
