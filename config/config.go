// Package config describes scenes as JSON documents and turns them into
// ready to render render.Scene values.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/mmap"

	"github.com/echoflaresat/whitted/geom"
	"github.com/echoflaresat/whitted/material"
	"github.com/echoflaresat/whitted/render"
	"github.com/echoflaresat/whitted/vectors"
)

var (
	ErrUnknownMaterial     = errors.New("config: object references an undefined material")
	ErrUnknownMaterialType = errors.New("config: unknown material type")
	ErrUnknownObjectType   = errors.New("config: unknown object type")
	ErrTriangleVertices    = errors.New("config: triangle needs exactly three vertices")
	ErrEmptyFile           = errors.New("config: scene file is empty")
)

// Vec is a JSON [x, y, z] triple.
type Vec [3]float64

func (v Vec) vec3() vectors.Vec3 {
	return vectors.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

type Camera struct {
	Eye    Vec     `json:"eye"`
	LookAt Vec     `json:"lookat"`
	Up     Vec     `json:"up"`
	FOVDeg float64 `json:"fov_deg"`
}

type Light struct {
	Direction Vec `json:"direction"`
	Radiance  Vec `json:"radiance"`
}

// Material is one of
//
//	{"type": "rough", "diffuse": [..], "specular": [..], "shininess": s}
//	{"type": "reflective", "n": [..], "kappa": [..]}
//	{"type": "refractive", "n": [..]}
type Material struct {
	Type      string  `json:"type"`
	Diffuse   Vec     `json:"diffuse,omitempty"`
	Specular  Vec     `json:"specular,omitempty"`
	Shininess float64 `json:"shininess,omitempty"`
	N         Vec     `json:"n,omitempty"`
	Kappa     Vec     `json:"kappa,omitempty"`
}

// Object is a shape referencing a material by name. Which geometry
// fields apply depends on Type: sphere (center, radius), ellipsoid
// (center, axes), triangle (vertices) or dodecahedron (center, scale).
type Object struct {
	Type     string  `json:"type"`
	Material string  `json:"material"`
	Center   Vec     `json:"center,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Axes     Vec     `json:"axes,omitempty"`
	Vertices []Vec   `json:"vertices,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// Scene is the on-disk scene description.
type Scene struct {
	Name      string              `json:"name,omitempty"`
	Camera    Camera              `json:"camera"`
	Ambient   Vec                 `json:"ambient"`
	Lights    []Light             `json:"lights"`
	Materials map[string]Material `json:"materials"`
	Objects   []Object            `json:"objects"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	if reader.Len() == 0 {
		return nil, ErrEmptyFile
	}
	buf := make([]byte, reader.Len())
	if _, err := reader.ReadAt(buf, 0); err != nil {
		return nil, err
	}
	return Parse(buf)
}

// Parse decodes a scene document. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &sc, nil
}

// Build resolves materials and creates the scene. Errors name the
// offending material or object index.
func (sc *Scene) Build() (*render.Scene, error) {
	names := make([]string, 0, len(sc.Materials))
	for name := range sc.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]*material.Material, len(sc.Materials))
	for _, name := range names {
		m, err := sc.Materials[name].build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	objects := make([]geom.Intersectable, 0, len(sc.Objects))
	for i, oc := range sc.Objects {
		m, ok := materials[oc.Material]
		if !ok {
			return nil, fmt.Errorf("object %d: %w %q", i, ErrUnknownMaterial, oc.Material)
		}
		obj, err := oc.build(m)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}

	lights := make([]render.Light, 0, len(sc.Lights))
	for _, lc := range sc.Lights {
		lights = append(lights, render.Light{Direction: lc.Direction.vec3(), Radiance: lc.Radiance.vec3()})
	}

	camera := render.NewCamera(sc.Camera.Eye.vec3(), sc.Camera.LookAt.vec3(), sc.Camera.Up.vec3(), sc.Camera.FOVDeg*math.Pi/180)
	return render.Build(camera, sc.Ambient.vec3(), objects, lights)
}

func (mc Material) build() (*material.Material, error) {
	var m *material.Material
	switch mc.Type {
	case "rough":
		m = material.NewRough(mc.Diffuse.vec3(), mc.Specular.vec3(), mc.Shininess)
	case "reflective":
		m = material.NewReflective(mc.N.vec3(), mc.Kappa.vec3())
	case "refractive":
		m = material.NewRefractive(mc.N.vec3())
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMaterialType, mc.Type)
	}
	return m, m.Validate()
}

func (oc Object) build(m *material.Material) (geom.Intersectable, error) {
	switch oc.Type {
	case "sphere":
		return geom.NewSphere(oc.Center.vec3(), oc.Radius, m), nil
	case "ellipsoid", "egg":
		return geom.NewEllipsoid(oc.Center.vec3(), oc.Axes.vec3(), m), nil
	case "triangle":
		if len(oc.Vertices) != 3 {
			return nil, ErrTriangleVertices
		}
		return geom.NewTriangle(oc.Vertices[0].vec3(), oc.Vertices[1].vec3(), oc.Vertices[2].vec3(), m), nil
	case "dodecahedron":
		return geom.NewDodecahedron(oc.Center.vec3(), oc.Scale, m), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownObjectType, oc.Type)
}
