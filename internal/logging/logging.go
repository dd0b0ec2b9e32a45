// Package logging configures the structured logger shared by the service.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stdout. Dev mode uses the text formatter;
// otherwise entries are JSON. An unknown level falls back to info.
func New(level string, dev bool) *logrus.Logger {
	return NewWithOutput(os.Stdout, level, dev)
}

// NewWithOutput is New with an explicit writer.
func NewWithOutput(w io.Writer, level string, dev bool) *logrus.Logger {
	logger := logrus.New()
	if dev {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	logger.SetOutput(w)
	return logger
}

// LogError logs err with the module and function it came from.
func LogError(logger logrus.FieldLogger, moduleName, funcName, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
