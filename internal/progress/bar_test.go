package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBar_TickAdvancesAndCompletes(t *testing.T) {
	var out bytes.Buffer
	clock := newFakeClock()
	bar := NewBar(&out, 10, BarConfig{
		Intn: func(int) int { return 2 },
		Now:  clock.Now,
	})

	bar.Tick(4)
	assert.Equal(t, 4, bar.Current())
	assert.False(t, bar.Complete())
	assert.Equal(t, LoadingGlyphs[2], bar.Loading())

	frame := out.String()
	assert.True(t, strings.HasPrefix(frame, "\r"))
	assert.Contains(t, frame, "uploading")
	assert.Contains(t, frame, "4/10")
	assert.Contains(t, frame, "40%")
	assert.Contains(t, frame, strings.Repeat(CompleteGlyph, 8))
	assert.Contains(t, frame, strings.Repeat(IncompleteGlyph, 12))

	clock.Advance(time.Second)
	bar.Tick(20)
	assert.Equal(t, 10, bar.Current())
	assert.True(t, bar.Complete())
	assert.True(t, strings.HasSuffix(out.String(), "\r\x1b[K"))

	written := out.Len()
	bar.Tick(1)
	assert.Equal(t, written, out.Len())
	assert.Equal(t, 10, bar.Current())
}

func TestBar_KeepOnComplete(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(&out, 2, BarConfig{KeepOnComplete: true, Label: "deploying"})

	bar.Tick(2)
	assert.True(t, bar.Complete())
	assert.Contains(t, out.String(), "deploying")
	assert.Contains(t, out.String(), "100%")
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestBar_ZeroTotalCompletesOnFirstTick(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(&out, 0, BarConfig{})
	assert.False(t, bar.Complete())

	bar.Tick(0)
	assert.True(t, bar.Complete())
	assert.Equal(t, 0, bar.total)
}

func TestBar_LoadingGlyphFromDeclaredSet(t *testing.T) {
	var out bytes.Buffer
	bar := NewBar(&out, 1000, BarConfig{})

	for range 50 {
		bar.Tick(1)
		assert.Contains(t, LoadingGlyphs, bar.Loading())
	}
	assert.Len(t, LoadingGlyphs, 5)
}

func TestBar_FillGlyphsDistinct(t *testing.T) {
	assert.NotEqual(t, CompleteGlyph, IncompleteGlyph)
}
