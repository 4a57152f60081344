package sigcast

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/sigcast/internal/logging"
	"github.com/aretw0/sigcast/pkg/cast"
	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/observability"
	"github.com/aretw0/sigcast/pkg/registry"
	"github.com/aretw0/sigcast/pkg/signal"
)

// Version is the sigcast release.
const Version = "0.1.0"

// Engine owns the cast registry and the signals built on it for one
// application. Create it during bootstrap and Close it at teardown.
type Engine struct {
	registry *registry.Registry
	signals  *signal.Table
	metrics  *observability.Metrics
	logger   *slog.Logger
	builtins bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics reports every signal operation and the registry size to m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithoutBuiltins skips registering the scalar, vector and matrix entries.
func WithoutBuiltins() Option {
	return func(e *Engine) {
		e.builtins = false
	}
}

// New creates an engine with a fresh registry.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		signals:  signal.NewTable(),
		builtins: true,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.registry = registry.New(registry.WithLogger(eng.logger))
	if eng.builtins {
		if err := cast.RegisterBuiltins(eng.registry); err != nil {
			return nil, fmt.Errorf("failed to register builtin casts: %w", err)
		}
	}
	eng.syncMetrics()

	eng.logger.Debug("Engine initialized.", "types", eng.registry.Len())
	return eng, nil
}

// Registry returns the cast registry.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// Signals returns the signal table.
func (e *Engine) Signals() *signal.Table { return e.signals }

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }

// Register adds a cast entry, e.g. from a plugin loaded after bootstrap.
func (e *Engine) Register(entry registry.Entry) error {
	if err := e.registry.Register(entry); err != nil {
		return err
	}
	e.syncMetrics()
	return nil
}

// NewSignal creates a signal of the given type and adds it to the table.
func (e *Engine) NewSignal(name string, key domain.TypeKey) (*signal.Signal, error) {
	opts := []signal.Option{signal.WithLogger(e.logger)}
	if e.metrics != nil {
		opts = append(opts, signal.WithObserver(e.metrics))
	}
	sig, err := signal.New(name, key, e.registry, opts...)
	if err != nil {
		return nil, err
	}
	if err := e.signals.Add(sig); err != nil {
		return nil, err
	}
	return sig, nil
}

// Close tears down the registry. Signals created by the engine fail their
// textual operations afterwards.
func (e *Engine) Close() error {
	err := e.registry.Close()
	e.syncMetrics()
	return err
}

func (e *Engine) syncMetrics() {
	if e.metrics != nil {
		e.metrics.SyncRegistry(e.registry)
	}
}
