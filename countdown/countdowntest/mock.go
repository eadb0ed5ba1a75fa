// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdowntest

import (
	"github.com/stretchr/testify/mock"

	"github.com/RomeuG/CountDownTimer/countdown"
)

// MockListener is a stretchr mock for countdown.Listener.  The OnXxx helpers set up expectations
// for the corresponding callback.
type MockListener struct {
	mock.Mock
}

var _ countdown.Listener = (*MockListener)(nil)

func (m *MockListener) OnStart() {
	m.Called()
}

func (m *MockListener) ExpectStart() *mock.Call {
	return m.On("OnStart")
}

func (m *MockListener) OnStop() {
	m.Called()
}

func (m *MockListener) ExpectStop() *mock.Call {
	return m.On("OnStop")
}

func (m *MockListener) OnTimeElapsed() {
	m.Called()
}

func (m *MockListener) ExpectTimeElapsed() *mock.Call {
	return m.On("OnTimeElapsed")
}

func (m *MockListener) OnTimeRemaining() {
	m.Called()
}

func (m *MockListener) ExpectTimeRemaining() *mock.Call {
	return m.On("OnTimeRemaining")
}

func (m *MockListener) OnFinished() {
	m.Called()
}

func (m *MockListener) ExpectFinished() *mock.Call {
	return m.On("OnFinished")
}

func (m *MockListener) OnTick() {
	m.Called()
}

func (m *MockListener) ExpectTick() *mock.Call {
	return m.On("OnTick")
}
