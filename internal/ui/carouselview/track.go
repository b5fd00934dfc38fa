package carouselview

import (
	"math"
	"time"

	"github.com/llehouerou/reel/internal/carousel"
)

// frameInterval is the animation frame period.
const frameInterval = time.Second / 30

// track is the horizontal strip of cards. It implements carousel.Track:
// with transitions enabled an offset change becomes an eased animation
// advanced by frame messages, otherwise the strip jumps.
type track struct {
	duration time.Duration
	curve    func(float64) float64

	transition bool
	current    float64
	from, to   float64

	epoch  uint64 // engine epoch reported when the running animation ends
	anim   uint64 // id of the running animation, 0 when still
	seq    uint64
	frames int
	begun  bool // a new animation needs its first frame scheduled
}

var _ carousel.Track = (*track)(nil)

func newTrack(duration time.Duration) *track {
	return &track{duration: duration, curve: Ease, transition: true}
}

func (t *track) SetTransition(enabled bool) {
	t.transition = enabled
}

func (t *track) SetOffset(offset int, epoch uint64) {
	if !t.transition {
		t.anim = 0
		t.begun = false
		t.current = float64(offset)
		t.from, t.to = t.current, t.current
		return
	}
	t.seq++
	t.anim = t.seq
	t.epoch = epoch
	t.from = t.current
	t.to = float64(offset)
	t.frames = 0
	t.begun = true
}

func (t *track) Flush() {
	t.from = t.current
}

// Offset is the strip translation in cells as currently drawn.
func (t *track) Offset() int {
	return int(math.Round(t.current))
}

// Animating reports whether an animation is running.
func (t *track) Animating() bool {
	return t.anim != 0
}

// takeBegun reports, once, that an animation started since the last call.
func (t *track) takeBegun() (uint64, bool) {
	if !t.begun || t.anim == 0 {
		return 0, false
	}
	t.begun = false
	return t.anim, true
}

// advance moves animation anim forward by one frame. ok is false for a
// frame of an animation that was superseded or cut short. done reports the
// end, with the epoch to hand back to the engine.
func (t *track) advance(anim uint64) (epoch uint64, done, ok bool) {
	if anim == 0 || anim != t.anim {
		return 0, false, false
	}
	t.frames++

	progress := 1.0
	if t.duration > 0 {
		progress = float64(time.Duration(t.frames)*frameInterval) / float64(t.duration)
	}
	if progress >= 1 {
		t.current = t.to
		t.from = t.to
		t.anim = 0
		return t.epoch, true, true
	}
	t.current = t.from + (t.to-t.from)*t.curve(progress)
	return 0, false, true
}
