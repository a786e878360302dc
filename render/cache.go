package render

import (
	"context"
	"math"

	lru "github.com/hashicorp/golang-lru"
)

// quantum is the grid camera coordinates are snapped to before keying.
const quantum = 1e-6

// FrameKey identifies a rendered frame by its view and resolution.
// Camera components are quantized so that orbits which return to the
// same pose up to rounding error share a key.
type FrameKey struct {
	Eye    [3]int64
	LookAt [3]int64
	VUp    [3]int64
	FOV    int64
	Width  int
	Height int

	// Supersampling grid size, 1 for a single centered ray.
	Samples int
}

func quantize(v float64) int64 {
	return int64(math.Round(v / quantum))
}

// NewFrameKey derives the cache key for rendering camera at width×height.
func NewFrameKey(camera Camera, width, height int) FrameKey {
	return FrameKey{
		Eye:     [3]int64{quantize(camera.Eye.X), quantize(camera.Eye.Y), quantize(camera.Eye.Z)},
		LookAt:  [3]int64{quantize(camera.LookAt.X), quantize(camera.LookAt.Y), quantize(camera.LookAt.Z)},
		VUp:     [3]int64{quantize(camera.VUp.X), quantize(camera.VUp.Y), quantize(camera.VUp.Z)},
		FOV:     quantize(camera.FOV),
		Width:   width,
		Height:  height,
		Samples: 1,
	}
}

// FrameCache keeps the most recently rendered frames of one scene so a
// periodic animation does not re-trace poses it has already visited.
// It is safe for concurrent use.
type FrameCache struct {
	frames *lru.Cache
}

// NewFrameCache returns a cache holding at most size frames.
func NewFrameCache(size int) (*FrameCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &FrameCache{frames: c}, nil
}

// Get returns a copy of the cached frame for key.
func (c *FrameCache) Get(key FrameKey) (*Frame, bool) {
	v, ok := c.frames.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Frame).Clone(), true
}

// Add stores a copy of frame under key.
func (c *FrameCache) Add(key FrameKey, frame *Frame) {
	c.frames.Add(key, frame.Clone())
}

func (c *FrameCache) Len() int {
	return c.frames.Len()
}

// RenderCached serves frame from cache when the current pose has been
// rendered before and otherwise renders it and stores the result.
// Interrupted frames are never cached.
func (s *Scene) RenderCached(ctx context.Context, cache *FrameCache, frame *Frame, opts Options) (FrameStats, error) {
	if frame == nil {
		return FrameStats{}, ErrInvalidResolution
	}
	key := NewFrameKey(s.camera, frame.Width, frame.Height)
	if opts.Samples > 1 {
		key.Samples = opts.Samples
	}
	if cached, ok := cache.Get(key); ok {
		copy(frame.Pix, cached.Pix)
		return FrameStats{Width: frame.Width, Height: frame.Height, Cached: true}, nil
	}

	stats, err := s.Render(ctx, frame, opts)
	if err != nil {
		return stats, err
	}
	cache.Add(key, frame)
	return stats, nil
}
