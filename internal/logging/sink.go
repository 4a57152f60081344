package logging

import (
	"context"
	"log/slog"
	"sync"
)

// Severity tags a diagnostic message. The Stream variants are for messages
// emitted every control cycle and are rate limited by the sink.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityDebugStream
	SeverityInfoStream
	SeverityWarningStream
	SeverityErrorStream
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityDebugStream:
		return "debug-stream"
	case SeverityInfoStream:
		return "info-stream"
	case SeverityWarningStream:
		return "warning-stream"
	case SeverityErrorStream:
		return "error-stream"
	default:
		return "unknown"
	}
}

// Stream reports whether s is one of the rate limited variants.
func (s Severity) Stream() bool { return s >= SeverityDebugStream }

// base folds a stream variant onto its plain severity.
func (s Severity) base() Severity {
	if s.Stream() {
		return s - SeverityDebugStream
	}
	return s
}

func (s Severity) level() slog.Level {
	switch s.base() {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Verbosity selects which severities a sink lets through.
type Verbosity int

const (
	VerbosityAll Verbosity = iota
	VerbosityInfoWarningError
	VerbosityWarningError
	VerbosityError
	VerbosityNone
)

func (v Verbosity) allows(s Severity) bool {
	switch v {
	case VerbosityAll:
		return true
	case VerbosityInfoWarningError:
		return s.base() >= SeverityInfo
	case VerbosityWarningError:
		return s.base() >= SeverityWarning
	case VerbosityError:
		return s.base() == SeverityError
	default:
		return false
	}
}

// Sink receives severity-tagged diagnostics. Implementations never block the
// caller for long.
type Sink interface {
	Append(msg string, sev Severity)
}

// SlogSink forwards diagnostics to a slog.Logger.
// Stream messages are only forwarded when the print countdown has run out;
// call Countdown once per control cycle.
type SlogSink struct {
	logger *slog.Logger

	mu                sync.Mutex
	verbosity         Verbosity
	timeSample        float64
	streamPrintPeriod float64
	countdown         float64
}

// NewSlogSink creates a sink with VerbosityAll, a 1ms time sample and a 1s
// stream print period.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = NewNop()
	}
	return &SlogSink{
		logger:            logger,
		verbosity:         VerbosityAll,
		timeSample:        0.001,
		streamPrintPeriod: 1.0,
	}
}

// SetVerbosity changes the severity filter.
func (s *SlogSink) SetVerbosity(v Verbosity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verbosity = v
}

// Verbosity returns the severity filter.
func (s *SlogSink) Verbosity() Verbosity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verbosity
}

// SetTimeSample sets the duration of one control cycle in seconds.
// Non-positive values are ignored.
func (s *SlogSink) SetTimeSample(dt float64) bool {
	if dt <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeSample = dt
	return true
}

// TimeSample returns the control cycle duration in seconds.
func (s *SlogSink) TimeSample() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeSample
}

// SetStreamPrintPeriod sets how often stream messages get through, in seconds.
// Non-positive values are ignored.
func (s *SlogSink) SetStreamPrintPeriod(period float64) bool {
	if period <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streamPrintPeriod = period
	return true
}

// StreamPrintPeriod returns the stream print period in seconds.
func (s *SlogSink) StreamPrintPeriod() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streamPrintPeriod
}

// Countdown advances the stream print clock by one time sample.
func (s *SlogSink) Countdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countdown <= 0 {
		s.countdown = s.streamPrintPeriod
	}
	s.countdown -= s.timeSample
}

// Append implements Sink.
func (s *SlogSink) Append(msg string, sev Severity) {
	s.mu.Lock()
	allowed := s.verbosity.allows(sev) && (!sev.Stream() || s.countdown <= 0)
	s.mu.Unlock()

	if !allowed {
		return
	}
	s.logger.Log(context.Background(), sev.level(), msg, "severity", sev.String())
}
