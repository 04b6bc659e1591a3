package api

import (
	"vincit.fi/selphy-print/common/logger"
)

type ProgressReporter interface {
	Update(name string, current int, total int)
	Error(message string, err error)
}

type LoggerProgressReporter struct {
	ProgressReporter
}

func NewLoggerProgressReporter() ProgressReporter {
	return LoggerProgressReporter{}
}

func (s LoggerProgressReporter) Update(name string, current int, total int) {
	logger.Info.Printf("Processing '%s' (%d/%d)", name, current, total)
}

func (s LoggerProgressReporter) Error(message string, err error) {
	logger.Warn.Printf("%s: %s", message, err)
}
