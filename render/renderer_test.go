package render

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/echoflaresat/whitted/colors"
	"github.com/echoflaresat/whitted/geom"
	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/vectors"
)

func glassScene(t *testing.T, m *material.Material) *Scene {
	t.Helper()
	camera := NewCamera(vectors.New(0, 0, 4), vectors.Zero(), vectors.New(0, 1, 0), 45*math.Pi/180)
	light := NewLight(vectors.New(1, 1, 1), vectors.Splat(2))
	s, err := Build(camera, la, []geom.Intersectable{geom.NewSphere(vectors.Zero(), 1, m)}, []Light{light})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func render(t *testing.T, s *Scene, w, h int, opts Options) (*Frame, FrameStats) {
	t.Helper()
	frame, err := NewFrame(w, h)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	stats, err := s.Render(context.Background(), frame, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return frame, stats
}

func assertFinite(t *testing.T, f *Frame) {
	t.Helper()
	for i, c := range f.Pix {
		if !c.IsFinite() || c.R < 0 || c.G < 0 || c.B < 0 {
			t.Fatalf("pixel %d = %+v is not finite and non-negative", i, c)
		}
	}
}

func TestNewFrameRejectsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewFrame(dims[0], dims[1]); !errors.Is(err, ErrInvalidResolution) {
			t.Fatalf("NewFrame(%d, %d) error = %v", dims[0], dims[1], err)
		}
	}
}

func TestRenderGlassSphere(t *testing.T) {
	s := glassScene(t, material.NewRefractive(vectors.Splat(1.5)))
	background := colors.FromRadiance(la)

	t.Run("2x2", func(t *testing.T) {
		// At 45° the four pixel centers pass the sphere at a distance of
		// about 1.12, so every ray escapes.
		frame, stats := render(t, s, 2, 2, Options{})
		assertFinite(t, frame)
		for i, c := range frame.Pix {
			if c != background {
				t.Fatalf("pixel %d = %+v, want La", i, c)
			}
		}
		if stats.Rays != 4 {
			t.Fatalf("rays = %d, want 4", stats.Rays)
		}
	})

	t.Run("3x3", func(t *testing.T) {
		frame, stats := render(t, s, 3, 3, Options{})
		assertFinite(t, frame)
		for _, p := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
			if c := frame.At(p[0], p[1]); c != background {
				t.Fatalf("corner %v = %+v, want La", p, c)
			}
		}

		// A lossless dielectric under uniform La splits every ray into
		// weights that sum to one, so the center only deviates by rounding.
		center := frame.At(1, 1).Radiance()
		if !vecAlmostEqual(center, la, 1e-9) {
			t.Fatalf("center = %v, want %v", center, la)
		}
		if stats.Rays <= 9 {
			t.Fatalf("rays = %d, the center must spawn secondary rays", stats.Rays)
		}
	})
}

func TestRenderRoughSphere(t *testing.T) {
	s := glassScene(t, material.NewRough(vectors.New(0.3, 0.2, 0.1), vectors.Splat(1), 50))
	frame, stats := render(t, s, 3, 3, Options{})
	assertFinite(t, frame)

	background := colors.FromRadiance(la)
	if frame.At(0, 0) != background {
		t.Fatalf("corner = %+v, want La", frame.At(0, 0))
	}
	if frame.At(1, 1) == background {
		t.Fatal("center pixel should show the sphere")
	}
	if stats.ShadowRays != 1 {
		t.Fatalf("shadow rays = %d, want 1", stats.ShadowRays)
	}
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	s := glassScene(t, material.NewRefractive(vectors.Splat(1.5)))
	mirror := &material.Material{Kind: material.Reflective, F0: vectors.New(0.9, 0.6, 0.3)}
	floor := material.NewRough(vectors.Splat(0.15), vectors.Splat(0.3), 30)
	objects := []geom.Intersectable{
		s.Objects()[0],
		geom.NewEllipsoid(vectors.New(1.5, 0, -1), vectors.New(0.5, 1, 0.5), mirror),
		plane(-1.2, floor),
	}
	scene, err := Build(s.Camera(), la, objects, s.Lights())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	serial, serialStats := render(t, scene, 17, 11, Options{Workers: 1})
	parallel, parallelStats := render(t, scene, 17, 11, Options{Workers: 8})

	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("pixel %d differs: %+v vs %+v", i, serial.Pix[i], parallel.Pix[i])
		}
	}
	if serialStats.Rays != parallelStats.Rays || serialStats.ShadowRays != parallelStats.ShadowRays {
		t.Fatalf("stats differ: %+v vs %+v", serialStats, parallelStats)
	}
	if parallelStats.Workers != 8 {
		t.Fatalf("workers = %d", parallelStats.Workers)
	}
}

func TestRenderSupersampling(t *testing.T) {
	s := mustBuild(t, nil, nil)
	frame, stats := render(t, s, 4, 3, Options{Samples: 3})
	if stats.Rays != 4*3*9 {
		t.Fatalf("rays = %d, want %d", stats.Rays, 4*3*9)
	}
	for i, c := range frame.Pix {
		if !vecAlmostEqual(c.Radiance(), la, tolerance) {
			t.Fatalf("pixel %d = %+v", i, c)
		}
	}
}

func TestRenderCancelled(t *testing.T) {
	s := mustBuild(t, nil, nil)
	frame, _ := NewFrame(8, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Render(ctx, frame, Options{})
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("error = %v, want ErrInterrupted", err)
	}
}

func TestFrameImageFlipsRows(t *testing.T) {
	frame, _ := NewFrame(1, 2)
	frame.Set(0, 0, colors.New(1, 0, 0, 1))
	frame.Set(0, 1, colors.New(0, 0, 1, 1))

	img := frame.Image(1)
	if top := img.NRGBAAt(0, 0); top.B != 255 || top.R != 0 {
		t.Fatalf("top row = %v, want the y = 1 pixel", top)
	}
	if bottom := img.NRGBAAt(0, 1); bottom.R != 255 || bottom.B != 0 {
		t.Fatalf("bottom row = %v, want the y = 0 pixel", bottom)
	}
}
