package progress

import (
	"errors"
	"io"
	"time"
)

// DefaultInterval is how often a Tracker reports while data is flowing.
const DefaultInterval = 500 * time.Millisecond

// Snapshot is one progress notification.
type Snapshot struct {
	// Delta is the number of bytes read since the previous notification.
	Delta int64

	// Transferred is the number of bytes read so far.
	Transferred int64

	// Length is the expected total in bytes.
	Length int64

	// Remaining is Length minus Transferred, never negative.
	Remaining int64

	// Percentage is Transferred as a percentage of Length.
	Percentage float64

	// Speed is the average rate in bytes per second.
	Speed float64

	// ETA estimates the time left at the current Speed.
	ETA time.Duration

	// Runtime is the time since the first read.
	Runtime time.Duration

	// Done is set on the final notification.
	Done bool
}

// TrackerConfig configures a Tracker. Zero fields take defaults.
type TrackerConfig struct {
	// Interval is the minimum time between notifications. Defaults to DefaultInterval.
	Interval time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// OnProgress receives each notification.
	OnProgress func(Snapshot)
}

// Tracker passes reads through from an underlying reader and reports how
// many bytes went by. Notifications are sampled on Read: one whenever
// Interval has elapsed since the last, and a final one when the underlying
// reader returns io.EOF.
//
// There is no timer: while the consumer is not reading, no notifications
// fire, however long the stall.
type Tracker struct {
	r      io.Reader
	length int64
	cfg    TrackerConfig

	started     bool
	finished    bool
	start       time.Time
	lastEmit    time.Time
	transferred int64
	reported    int64
}

// NewTracker wraps r, expecting length bytes in total.
func NewTracker(r io.Reader, length int64, cfg TrackerConfig) *Tracker {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Tracker{r: r, length: length, cfg: cfg}
}

// Read implements io.Reader.
func (t *Tracker) Read(p []byte) (int, error) {
	if !t.started {
		t.started = true
		t.start = t.cfg.Now()
		t.lastEmit = t.start
	}

	n, err := t.r.Read(p)
	t.transferred += int64(n)

	if errors.Is(err, io.EOF) {
		t.finish()
		return n, err
	}

	if n > 0 {
		if now := t.cfg.Now(); now.Sub(t.lastEmit) >= t.cfg.Interval {
			t.emit(now, false)
		}
	}
	return n, err
}

// Len returns the expected total in bytes.
func (t *Tracker) Len() int {
	return int(t.length)
}

func (t *Tracker) finish() {
	if t.finished {
		return
	}
	t.finished = true
	t.emit(t.cfg.Now(), true)
}

func (t *Tracker) emit(now time.Time, done bool) {
	t.lastEmit = now
	snap := t.snapshot(now, done)
	t.reported = t.transferred
	if t.cfg.OnProgress != nil {
		t.cfg.OnProgress(snap)
	}
}

func (t *Tracker) snapshot(now time.Time, done bool) Snapshot {
	elapsed := now.Sub(t.start)
	remaining := max(t.length-t.transferred, 0)

	var pct float64
	switch {
	case t.length > 0:
		pct = float64(t.transferred) / float64(t.length) * 100
	case done:
		pct = 100
	}

	var speed float64
	var eta time.Duration
	if secs := elapsed.Seconds(); secs > 0 {
		speed = float64(t.transferred) / secs
		if speed > 0 {
			eta = time.Duration(float64(remaining) / speed * float64(time.Second))
		}
	}

	return Snapshot{
		Delta:       t.transferred - t.reported,
		Transferred: t.transferred,
		Length:      t.length,
		Remaining:   remaining,
		Percentage:  pct,
		Speed:       speed,
		ETA:         eta,
		Runtime:     elapsed,
		Done:        done,
	}
}
