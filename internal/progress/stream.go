package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

type streamOptions struct {
	isTerminal func() bool
	out        io.Writer
	interval   time.Duration
	intn       func(int) int
	now        func() time.Time
}

// Option configures NewUploadStream.
type Option func(*streamOptions)

// WithTerminal overrides the check for an interactive stdin.
func WithTerminal(isTerminal func() bool) Option {
	return func(o *streamOptions) { o.isTerminal = isTerminal }
}

// WithOutput sets where the progress bar is drawn. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *streamOptions) { o.out = w }
}

// WithInterval sets the progress sampling interval. Defaults to DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(o *streamOptions) { o.interval = d }
}

// WithRand sets the spinner frame picker.
func WithRand(intn func(int) int) Option {
	return func(o *streamOptions) { o.intn = intn }
}

// WithClock sets the time source for the tracker and the bar.
func WithClock(now func() time.Time) Option {
	return func(o *streamOptions) { o.now = now }
}

// StdinIsTerminal reports whether the process's stdin is an interactive terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewUploadStream encodes payload as JSON and returns a reader over the
// encoded bytes. When stdin is not a terminal the reader is a plain *Source.
// Otherwise it is a *Tracker over the source that draws a kilobyte progress
// bar as the bytes are consumed. The check happens once, here.
func NewUploadStream(payload any, opts ...Option) (io.Reader, error) {
	o := streamOptions{
		isTerminal: StdinIsTerminal,
		out:        os.Stderr,
		interval:   DefaultInterval,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	buf, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}

	src := NewSource(buf)
	if !o.isTerminal() {
		return src, nil
	}

	bar := NewBar(o.out, kilobytes(int64(len(buf))), BarConfig{
		Intn: o.intn,
		Now:  o.now,
	})

	return NewTracker(src, int64(len(buf)), TrackerConfig{
		Interval: o.interval,
		Now:      o.now,
		OnProgress: func(s Snapshot) {
			bar.Tick(kilobytes(s.Delta))
		},
	}), nil
}

// encodePayload marshals payload without HTML escaping or a trailing newline.
func encodePayload(payload any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("encode upload payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func kilobytes(n int64) int {
	return int(math.Round(float64(n) / 1024))
}
