package logging

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// InitLogging keeps stdout free for the result line. Diagnostics go to stderr
// and stay quiet unless something unexpected happens.
func InitLogging() {
	Log.SetFormatter(&logrus.TextFormatter{})
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.WarnLevel)
}

func ForInvocation(id uuid.UUID) AbstractLogger {
	return Log.WithField("invocation", id.String())
}

type AbstractLogger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}
