package logging

import "github.com/stretchr/testify/mock"

// MockLogger records calls as (format, args) for the f variants and (args) otherwise,
// with args passed as a single slice.
type MockLogger struct {
	mock.Mock
}

// NewMockLogger returns a MockLogger that accepts any call, so tests only
// assert on the entries they care about.
func NewMockLogger() *MockLogger {
	m := &MockLogger{}
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		m.On(method, mock.Anything)
		m.On(method+"f", mock.Anything, mock.Anything)
	}
	return m
}

func (m *MockLogger) Debug(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

type NilLogger struct{}

func (l *NilLogger) Debug(args ...interface{})                 {}
func (l *NilLogger) Debugf(format string, args ...interface{}) {}
func (l *NilLogger) Info(args ...interface{})                  {}
func (l *NilLogger) Infof(format string, args ...interface{})  {}
func (l *NilLogger) Warn(args ...interface{})                  {}
func (l *NilLogger) Warnf(format string, args ...interface{})  {}
func (l *NilLogger) Error(args ...interface{})                 {}
func (l *NilLogger) Errorf(format string, args ...interface{}) {}
