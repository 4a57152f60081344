// Package trace writes the trace form of a set of signals to a stream, one
// line per signal and cycle.
package trace

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/sigcast/pkg/signal"
)

// Recorder appends trace lines for its signals to a writer.
type Recorder struct {
	mu      sync.Mutex
	w       io.Writer
	signals []*signal.Signal
}

// NewRecorder creates a recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Add schedules s for recording. Signals are recorded in the order added.
func (r *Recorder) Add(s *signal.Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = append(r.signals, s)
}

// Record writes "<name> <time> <trace>" for every signal holding a value.
// A signal that fails to render does not stop the others; all failures are
// returned together.
func (r *Recorder) Record() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, s := range r.signals {
		if !s.Valid() {
			continue
		}
		line, err := s.Trace()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if _, err := fmt.Fprintf(r.w, "%s %d %s", s.Name(), s.Time(), line); err != nil {
			return errors.Join(append(errs, err)...)
		}
	}
	return errors.Join(errs...)
}
