package logging

import (
	"bytes"
	"testing"
)

func TestParseTraceparent(t *testing.T) {
	tc, ok := parseTraceparent("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	if !ok {
		t.Fatal("expected valid traceparent")
	}
	if tc.traceID != "4bf92f3577b34da6a3ce929d0e0e4736" || tc.spanID != "00f067aa0ba902b7" || !tc.sampled {
		t.Fatalf("unexpected trace context: %+v", tc)
	}

	for _, bad := range []string{"", "garbage", "00-xyz-00f067aa0ba902b7-01", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7"} {
		if _, ok := parseTraceparent(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestLoggerWithTrace(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf)

	if loggerWithTrace(base, "", "") != base {
		t.Fatal("expected base logger when nothing to add")
	}

	loggerWithTrace(base, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-00", "req-1").Info("x")
	m := decodeLine(t, &buf)
	if m["trace_id"] != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("expected trace_id, got %v", m["trace_id"])
	}
	if m["trace_sampled"] != false {
		t.Fatalf("expected unsampled, got %v", m["trace_sampled"])
	}
	if m["requestId"] != "req-1" {
		t.Fatalf("expected requestId, got %v", m["requestId"])
	}
}
