package trace

import (
	"fmt"
	"math"
	"sort"
)

// Trace is the immutable column store: a length N and a mapping from
// channel name to a length-N numeric vector. It is read-only for the
// lifetime of an evaluation.
type Trace struct {
	n        int
	channels map[string][]float32
}

// New constructs a Trace from a set of equal-length channels. It returns
// ErrEmptyTrace if channels is empty or every vector has length 0, and
// ErrChannelLengthMismatch if the vectors disagree on length (including
// when only some of them are empty).
//
// The input map is copied defensively; the caller's slices are not
// retained, so New never observes later mutation of its argument.
func New(channels map[string][]float32) (*Trace, error) {
	if len(channels) == 0 {
		return nil, ErrEmptyTrace
	}

	n := -1
	for name, vec := range channels {
		if n == -1 {
			n = len(vec)
		} else if len(vec) != n {
			return nil, fmt.Errorf("trace: channel %q has length %d, want %d: %w", name, len(vec), n, ErrChannelLengthMismatch)
		}
	}
	if n == 0 {
		return nil, ErrEmptyTrace
	}

	cp := make(map[string][]float32, len(channels))
	for name, vec := range channels {
		dup := make([]float32, len(vec))
		copy(dup, vec)
		cp[name] = dup
	}

	return &Trace{n: n, channels: cp}, nil
}

// N returns the trace's length.
func (t *Trace) N() int { return t.n }

// ChannelNames returns the trace's channel names in sorted order, for
// deterministic iteration.
func (t *Trace) ChannelNames() []string {
	names := make([]string, 0, len(t.channels))
	for name := range t.channels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// HasChannel reports whether name is a known channel.
func (t *Trace) HasChannel(name string) bool {
	_, ok := t.channels[name]

	return ok
}

// Sample returns the value of channel name at time t. If t is at or past
// the trace's length, the sample is -infinity rather than an error — this
// is the "vacuously false" convention atomics rely on when a temporal
// operator's recursion pushes its window past the end of the trace.
// Sample panics with UnknownChannelError if name is not a channel of this
// trace; that case must be caught at tree-construction time, not on every
// sample.
func (t *Trace) Sample(name string, time int) float32 {
	vec, ok := t.channels[name]
	if !ok {
		panic(UnknownChannelError{Name: name})
	}
	if time < 0 || time >= len(vec) {
		return float32(math.Inf(-1))
	}

	return vec[time]
}
