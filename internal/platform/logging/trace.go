package logging

import (
	"log/slog"
	"regexp"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceHeaderRe = regexp.MustCompile(
	`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`,
)

type traceContext struct {
	traceID string
	spanID  string
	sampled bool
}

func parseTraceparent(header string) (traceContext, bool) {
	m := traceHeaderRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}, false
	}
	return traceContext{traceID: m[2], spanID: m[3], sampled: m[4] == "01"}, true
}

func (tc traceContext) attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("trace_id", tc.traceID),
		slog.String("span_id", tc.spanID),
		slog.Bool("trace_sampled", tc.sampled),
	}
}

func loggerWithTrace(base *slog.Logger, header, requestID string) *slog.Logger {
	var args []any
	if tc, ok := parseTraceparent(header); ok {
		for _, a := range tc.attrs() {
			args = append(args, a)
		}
	}
	if requestID != "" {
		args = append(args, slog.String("requestId", requestID))
	}
	if len(args) == 0 {
		return base
	}
	return base.With(args...)
}
