package render

import "time"

type FrameStats struct {
	// Frame dims.
	Width  int
	Height int

	// Number of goroutines allowed to trace rows concurrently.
	Workers int

	// Primary, reflected and refracted rays traced.
	Rays int64

	// Occlusion tests toward lights.
	ShadowRays int64

	// True if the frame was served from a FrameCache.
	Cached bool

	// Wall time for the entire frame.
	RenderTime time.Duration
}

// RaysPerSecond is zero for cached or instantaneous frames.
func (s FrameStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.Rays+s.ShadowRays) / s.RenderTime.Seconds()
}
