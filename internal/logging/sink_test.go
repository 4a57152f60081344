package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/sigcast/internal/logging"
)

func newSink(buf *bytes.Buffer) *logging.SlogSink {
	return logging.NewSlogSink(logging.NewWithWriter(buf, slog.LevelDebug))
}

func TestSlogSink_Verbosity(t *testing.T) {
	tests := []struct {
		verbosity logging.Verbosity
		want      []string
	}{
		{logging.VerbosityAll, []string{"debug", "info", "warning", "error"}},
		{logging.VerbosityInfoWarningError, []string{"info", "warning", "error"}},
		{logging.VerbosityWarningError, []string{"warning", "error"}},
		{logging.VerbosityError, []string{"error"}},
		{logging.VerbosityNone, nil},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		sink := newSink(&buf)
		sink.SetVerbosity(tt.verbosity)
		assert.Equal(t, tt.verbosity, sink.Verbosity())

		sink.Append("msg", logging.SeverityDebug)
		sink.Append("msg", logging.SeverityInfo)
		sink.Append("msg", logging.SeverityWarning)
		sink.Append("msg", logging.SeverityError)

		var got []string
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			if line == "" {
				continue
			}
			i := strings.Index(line, "severity=")
			got = append(got, line[i+len("severity="):])
		}
		assert.Equal(t, tt.want, got, "verbosity %d", tt.verbosity)
	}
}

func TestSlogSink_StreamThrottling(t *testing.T) {
	var buf bytes.Buffer
	sink := newSink(&buf)
	assert.True(t, sink.SetTimeSample(0.125))
	assert.True(t, sink.SetStreamPrintPeriod(0.5))
	assert.False(t, sink.SetTimeSample(0))
	assert.False(t, sink.SetStreamPrintPeriod(-1))
	assert.Equal(t, 0.125, sink.TimeSample())
	assert.Equal(t, 0.5, sink.StreamPrintPeriod())

	// 12 cycles with a period of four samples lets three stream messages out.
	for i := 0; i < 12; i++ {
		sink.Append("cycle", logging.SeverityInfoStream)
		sink.Append("plain", logging.SeverityInfo)
		sink.Countdown()
	}

	assert.Equal(t, 3, strings.Count(buf.String(), "msg=cycle"))
	assert.Equal(t, 12, strings.Count(buf.String(), "msg=plain"))
}

func TestSlogSink_LevelMapping(t *testing.T) {
	var buf bytes.Buffer
	sink := newSink(&buf)

	sink.Append("bad", logging.SeverityErrorStream)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "severity=error-stream")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("whatever"))
}

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo)
	logger.Info("failed", "error", "boom")
	assert.Contains(t, buf.String(), "err=boom")
}
