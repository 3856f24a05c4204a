package app

import (
	"io"

	log "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/kr/pretty"
	"github.com/prometheus/common/promlog"
)

// newLogger builds the same logger as promlog.New, but writing to w.
func newLogger(w io.Writer, config *promlog.Config) log.Logger {
	var l log.Logger
	if config.Format != nil && config.Format.String() == "json" {
		l = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		l = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}

	if config.Level == nil {
		return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	}
	l = log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.Caller(5))

	var allow level.Option
	switch config.Level.String() {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	return level.NewFilter(l, allow)
}

// prettyValue defers formatting until a log record is actually written.
type prettyValue struct {
	v interface{}
}

func (p prettyValue) String() string {
	return pretty.Sprintf("%# v", p.v)
}
