package sim

import "github.com/milk9111/ledgeswing/common"

// AttachEase tracks how far the rope has extended toward the attach point.
// Progress only moves forward while attached and is reset on release.
type AttachEase struct {
	Progress float32
	Duration float32
}

// Start begins a new extension lasting duration seconds.
func (e *AttachEase) Start(duration float32) {
	e.Progress = 0
	e.Duration = duration
}

// Advance moves progress forward by dt, saturating at Duration.
func (e *AttachEase) Advance(dt float32) {
	if e.Duration <= 0 || dt <= 0 || !common.Finite(dt) {
		return
	}
	e.Progress += dt
	if e.Progress > e.Duration {
		e.Progress = e.Duration
	}
}

func (e *AttachEase) Reset() {
	e.Progress = 0
}

// Done reports whether the extension has finished.
func (e AttachEase) Done() bool {
	return e.Duration <= 0 || e.Progress >= e.Duration
}

// Reach is the eased extension in [0,1]. Without a duration the rope snaps
// straight to 1.
func (e AttachEase) Reach() float32 {
	if e.Duration <= 0 {
		return 1
	}
	return common.EaseInOutCubic(e.Progress / e.Duration)
}
