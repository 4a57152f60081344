// Package config loads the bootstrap document that declares signals and their
// initial literals.
//
//	signals:
//	  - name: gain
//	    type: double
//	    value: 42.5
//	  - name: unit
//	    type: vector
//	    value: "[5](0,0,1,0,0)"
//	trace: [gain, unit]
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/sigcast"
	"github.com/aretw0/sigcast/pkg/domain"
)

// SignalSpec declares one signal.
type SignalSpec struct {
	Name  string `mapstructure:"name"`
	Type  string `mapstructure:"type"`
	Value string `mapstructure:"value"` // Literal passed to Set; empty leaves the signal unset
}

// Document is the bootstrap file.
type Document struct {
	Signals []SignalSpec `mapstructure:"signals"`
	Trace   []string     `mapstructure:"trace"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML (or JSON) document. Scalar values are accepted for
// value and converted to their literal text, so `value: 42.5` and
// `value: "42.5"` are equivalent.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	seen := make(map[string]bool, len(d.Signals))
	for i, s := range d.Signals {
		if s.Name == "" {
			return fmt.Errorf("signals[%d]: name is required", i)
		}
		if s.Type == "" {
			return fmt.Errorf("signal %q: type is required", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("signal %q: %w", s.Name, domain.ErrDuplicateSignal)
		}
		seen[s.Name] = true
	}
	for _, name := range d.Trace {
		if !seen[name] {
			return fmt.Errorf("trace %q: %w", name, domain.ErrSignalNotFound)
		}
	}
	return nil
}

// Apply creates the declared signals in eng and sets their initial values.
// It stops at the first failure.
func Apply(ctx context.Context, doc *Document, eng *sigcast.Engine) error {
	logger := eng.Logger()

	for _, spec := range doc.Signals {
		if err := ctx.Err(); err != nil {
			return err
		}

		sig, err := eng.NewSignal(spec.Name, domain.TypeKey(spec.Type))
		if err != nil {
			return fmt.Errorf("signal %q: %w", spec.Name, err)
		}
		if spec.Value == "" {
			logger.Debug("Declared signal without value.", "signal", spec.Name, "type", spec.Type)
			continue
		}
		if err := sig.Set(spec.Value); err != nil {
			return err
		}
		logger.Debug("Signal initialized from config.", "signal", spec.Name, "type", spec.Type)
	}

	logger.Info("Config applied.", "signals", len(doc.Signals))
	return nil
}
