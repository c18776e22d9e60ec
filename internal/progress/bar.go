package progress

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/fatih/color"
)

// LoadingGlyphs are the spinner frames shown in front of the bar.
var LoadingGlyphs = []string{"⣴", "⣆", "⢻", "⢪", "⢫"}

// Bar fill glyphs.
const (
	CompleteGlyph   = "█"
	IncompleteGlyph = "░"
)

// DefaultBarWidth is the number of cells in the bar.
const DefaultBarWidth = 20

var (
	completeColor   = color.New(color.FgGreen)
	incompleteColor = color.New(color.FgWhite)
	labelColor      = color.New(color.FgGreen)
)

// BarConfig configures a Bar. Zero fields take defaults.
type BarConfig struct {
	// Label is printed before the bar. Defaults to "uploading".
	Label string

	// Width is the number of bar cells. Defaults to DefaultBarWidth.
	Width int

	// KeepOnComplete leaves the final frame on screen instead of clearing it.
	KeepOnComplete bool

	// Intn picks the spinner frame. Defaults to math/rand/v2.IntN.
	Intn func(n int) int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Bar renders a single-line progress bar measured in kilobytes:
//
//	⣴ uploading ████████░░░░░░░░░░░░ 40/100 12 KB/s, 40% 5.0s
type Bar struct {
	w     io.Writer
	total int
	cfg   BarConfig

	current  int
	start    time.Time
	loading  string
	complete bool
}

// NewBar returns a Bar writing to w that completes after total units.
func NewBar(w io.Writer, total int, cfg BarConfig) *Bar {
	if cfg.Label == "" {
		cfg.Label = "uploading"
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultBarWidth
	}
	if cfg.Intn == nil {
		cfg.Intn = rand.IntN
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Bar{w: w, total: max(total, 0), cfg: cfg}
}

// Tick advances the bar by n units, picks a new spinner frame and redraws.
// Ticks after completion are ignored.
func (b *Bar) Tick(n int) {
	if b.complete {
		return
	}
	if b.start.IsZero() {
		b.start = b.cfg.Now()
	}

	b.current += n
	b.loading = LoadingGlyphs[b.cfg.Intn(len(LoadingGlyphs))]

	if b.current >= b.total {
		b.current = b.total
		b.complete = true
	}

	fmt.Fprintf(b.w, "\r%s\x1b[K", b.line())

	if b.complete {
		if b.cfg.KeepOnComplete {
			fmt.Fprintln(b.w)
		} else {
			fmt.Fprint(b.w, "\r\x1b[K")
		}
	}
}

// Current returns the units completed so far.
func (b *Bar) Current() int {
	return b.current
}

// Complete reports whether the bar has reached its total.
func (b *Bar) Complete() bool {
	return b.complete
}

// Loading returns the spinner frame chosen by the last Tick.
func (b *Bar) Loading() string {
	return b.loading
}

func (b *Bar) line() string {
	ratio := 1.0
	if b.total > 0 {
		ratio = math.Min(math.Max(float64(b.current)/float64(b.total), 0), 1)
	}

	filled := int(math.Round(float64(b.cfg.Width) * ratio))
	bar := completeColor.Sprint(strings.Repeat(CompleteGlyph, filled)) +
		incompleteColor.Sprint(strings.Repeat(IncompleteGlyph, b.cfg.Width-filled))

	elapsed := b.cfg.Now().Sub(b.start).Seconds()
	var rate float64
	if elapsed > 0 {
		rate = float64(b.current) / elapsed
	}

	var eta float64
	if ratio < 1 && b.current > 0 {
		eta = elapsed * (float64(b.total)/float64(b.current) - 1)
	}

	return fmt.Sprintf("%s %s %s %d/%d %.0f KB/s, %d%% %.1fs",
		b.loading,
		labelColor.Sprint(b.cfg.Label),
		bar,
		b.current, b.total,
		rate,
		int(math.Floor(ratio*100)),
		eta,
	)
}
