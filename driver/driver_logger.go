package driver

import "github.com/sirupsen/logrus"

type driverLogger struct {
	logger *logrus.Entry
}

func newDriverLogger(l *logrus.Entry) driverLogger {
	return driverLogger{logger: l}
}

// Log satisfies aws.Logger, forwarding SDK messages at debug level.
func (l driverLogger) Log(args ...interface{}) {
	l.logger.Debugln(args...)
}
