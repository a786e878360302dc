package render

import "errors"

var (
	ErrInvalidResolution  = errors.New("render: frame width and height must be positive")
	ErrInvalidCamera      = errors.New("render: camera eye, lookat, up and fov do not define a view")
	ErrInvalidAmbient     = errors.New("render: ambient radiance must be finite and non-negative")
	ErrZeroLightDirection = errors.New("render: light direction has zero length")
	ErrInvalidLight       = errors.New("render: light radiance must be finite")
	ErrNilObject          = errors.New("render: nil object in scene")
	ErrInterrupted        = errors.New("render: interrupted while rendering")
)
