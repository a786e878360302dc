package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var (
	frontView = Camera{Eye: Vec{0, 0, 4}, LookAt: Vec{0, 0, 0}, Up: Vec{0, 1, 0}, FOVDeg: 45}
	sunLight  = []Light{{Direction: Vec{1, 1, 1}, Radiance: Vec{2, 2, 2}}}
	gray      = Vec{0.4, 0.4, 0.4}

	gold   = Material{Type: "reflective", N: Vec{0.17, 0.35, 1.5}, Kappa: Vec{3.1, 2.7, 1.9}}
	silver = Material{Type: "reflective", N: Vec{0.14, 0.16, 0.13}, Kappa: Vec{4.1, 2.3, 3.1}}
	glass  = Material{Type: "refractive", N: Vec{1.5, 1.5, 1.5}}
	water  = Material{Type: "refractive", N: Vec{1.2, 1.2, 1.2}}
	blue   = Material{Type: "rough", Diffuse: Vec{0.1, 0.2, 0.3}, Specular: Vec{2, 2, 2}, Shininess: 100}
	purple = Material{Type: "rough", Diffuse: Vec{0.3, 0, 0.2}, Specular: Vec{2, 2, 2}, Shininess: 20}
	floor  = Material{Type: "rough", Diffuse: Vec{0.15, 0.15, 0.12}, Specular: Vec{0.2, 0.2, 0.2}, Shininess: 10}
)

var presets = map[string]Scene{
	"glass": {
		Name:      "glass",
		Camera:    frontView,
		Ambient:   gray,
		Lights:    sunLight,
		Materials: map[string]Material{"glass": glass},
		Objects: []Object{
			{Type: "sphere", Material: "glass", Center: Vec{0, 0, 0}, Radius: 1},
		},
	},
	"eggs": {
		Name:      "eggs",
		Camera:    frontView,
		Ambient:   gray,
		Lights:    sunLight,
		Materials: map[string]Material{"gold": gold, "blue": blue, "purple": purple},
		Objects: []Object{
			{Type: "ellipsoid", Material: "gold", Center: Vec{0, 0, 0}, Axes: Vec{0.5, 1, 1}},
			{Type: "ellipsoid", Material: "blue", Center: Vec{2, 2, 0}, Axes: Vec{0.5, 1, 1}},
			{Type: "ellipsoid", Material: "purple", Center: Vec{0, 0.5, -0.8}, Axes: Vec{0.25, 0.5, 0.5}},
		},
	},
	"dodecahedron": {
		Name:      "dodecahedron",
		Camera:    Camera{Eye: Vec{2.5, 1.5, 3}, LookAt: Vec{0, 0, 0}, Up: Vec{0, 1, 0}, FOVDeg: 45},
		Ambient:   gray,
		Lights:    sunLight,
		Materials: map[string]Material{"water": water, "gold": gold},
		Objects: []Object{
			{Type: "dodecahedron", Material: "water", Center: Vec{0, 0, 0}, Scale: 0.6},
			{Type: "ellipsoid", Material: "gold", Center: Vec{0, 0, 0}, Axes: Vec{0.25, 0.5, 0.5}},
		},
	},
	"mirrors": {
		Name:      "mirrors",
		Camera:    Camera{Eye: Vec{0, 0.5, 0}, LookAt: Vec{0, 0.5, -1}, Up: Vec{0, 1, 0}, FOVDeg: 60},
		Ambient:   gray,
		Lights:    sunLight,
		Materials: map[string]Material{"silver": silver, "purple": purple},
		Objects: []Object{
			{Type: "triangle", Material: "silver", Vertices: []Vec{{-10, -10, -2}, {10, -10, -2}, {0, 10, -2}}},
			{Type: "triangle", Material: "silver", Vertices: []Vec{{-10, -10, 2}, {0, 10, 2}, {10, -10, 2}}},
			{Type: "sphere", Material: "purple", Center: Vec{0.4, 0.3, -1}, Radius: 0.3},
		},
	},
	"spheres": {
		Name:      "spheres",
		Camera:    Camera{Eye: Vec{0, 1, 5}, LookAt: Vec{0, 0, 0}, Up: Vec{0, 1, 0}, FOVDeg: 50},
		Ambient:   gray,
		Lights:    sunLight,
		Materials: map[string]Material{"glass": glass, "gold": gold, "blue": blue, "floor": floor},
		Objects: []Object{
			{Type: "sphere", Material: "glass", Center: Vec{-1.1, 0, 0}, Radius: 0.5},
			{Type: "sphere", Material: "gold", Center: Vec{0, 0, -0.5}, Radius: 0.5},
			{Type: "sphere", Material: "blue", Center: Vec{1.1, 0, 0}, Radius: 0.5},
			{Type: "triangle", Material: "floor", Vertices: []Vec{{-20, -0.5, 20}, {20, -0.5, 20}, {0, -0.5, -20}}},
		},
	},
}

// Presets returns the names of the built-in scenes in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of a built-in scene description.
func Preset(name string) (*Scene, error) {
	sc, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}

	// Slices and maps are shared with the table; hand out fresh ones.
	sc.Lights = append([]Light(nil), sc.Lights...)
	sc.Objects = append([]Object(nil), sc.Objects...)
	materials := make(map[string]Material, len(sc.Materials))
	for k, v := range sc.Materials {
		materials[k] = v
	}
	sc.Materials = materials
	return &sc, nil
}
