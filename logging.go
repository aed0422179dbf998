package main

import (
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/time/rate"
)

const (
	_levelDebug = "debug"
	_levelInfo  = "info"
	_levelWarn  = "warn"
	_levelError = "error"

	_progressInterval = time.Second
)

var _levels = map[string]level.Option{
	_levelDebug: level.AllowDebug(),
	_levelInfo:  level.AllowInfo(),
	_levelWarn:  level.AllowWarn(),
	_levelError: level.AllowError(),
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, _levels[lvl])
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// progressLogger returns a scanner progress callback that logs at most once
// per _progressInterval.
func progressLogger(logger log.Logger, total uint64) func(scanned uint64) {
	sometimes := &rate.Sometimes{Interval: _progressInterval}
	return func(scanned uint64) {
		sometimes.Do(func() {
			level.Info(logger).Log("msg", "scanning ranges", "scanned", scanned, "total", total)
		})
	}
}
