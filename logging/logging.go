// Package logging builds the component-tagged loggers shared by the drivers,
// the provisioner and the command.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

const componentField = "component"

// LevelWriter is a log destination that also sets the lowest level written to it.
type LevelWriter interface {
	io.Writer
	Level() logrus.Level
}

type leveledWriter struct {
	io.Writer
	level logrus.Level
}

func (w leveledWriter) Level() logrus.Level {
	return w.level
}

// WithLevel attaches level to logDest. Loggers built by New on the result
// drop anything below it.
func WithLevel(logDest io.Writer, level logrus.Level) LevelWriter {
	return leveledWriter{Writer: logDest, level: level}
}

// New returns an entry writing to logDest and tagged with component. The
// level comes from logDest when it is a LevelWriter and is info otherwise.
// Each call owns its logrus.Logger, so callers sharing a writer must
// serialize it themselves.
func New(logDest io.Writer, component string) *logrus.Entry {
	level := logrus.InfoLevel
	if lw, ok := logDest.(LevelWriter); ok {
		level = lw.Level()
	}

	return NewWithLevel(logDest, component, level)
}

func NewWithLevel(logDest io.Writer, component string, level logrus.Level) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(logDest)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return l.WithField(componentField, component)
}
