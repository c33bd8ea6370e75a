package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/fluxt/star-wars/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	Direction     core.Vec3 // Look direction, need not be unit length
	Up            core.Vec3 // Approximate up vector
	VFov          float64   // Vertical field of view in degrees
	FocusDistance float64   // Distance to the plane of perfect focus (<= 0 means 1)
	DefocusAngle  float64   // Aperture cone angle in degrees (<= 0 disables depth of field)
}

// Camera generates primary rays. It is immutable after construction and safe to share between workers.
type Camera struct {
	config  CameraConfig
	width   int
	height  int
	center  core.Vec3
	pixel00 core.Vec3 // Corner of pixel (0, 0)
	du      core.Vec3 // Step one column to the right
	dv      core.Vec3 // Step one row down
	diskU   core.Vec3 // Lens disk basis, scaled by the aperture radius
	diskV   core.Vec3
}

// NewCamera derives the viewport for an image of width×height pixels
func NewCamera(config CameraConfig, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if config.Direction.NearZero() {
		return nil, errors.New("camera direction must be non-zero")
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("vertical field of view must be in (0, 180) degrees, got %v", config.VFov)
	}

	right := config.Direction.Cross(config.Up)
	if right.NearZero() {
		return nil, errors.New("camera up vector must not be parallel to the look direction")
	}
	right = right.Normalize()

	focus := config.FocusDistance
	if focus <= 0 {
		focus = 1.0
	}

	// Pixel step sized so the viewport at the focus plane spans the vertical FOV
	theta := config.VFov * math.Pi / 180
	magnitude := 2.0 * focus * math.Tan(theta/2) / float64(height)
	du := right.Multiply(magnitude)
	down := config.Direction.Cross(du).Normalize()
	dv := down.Multiply(magnitude)

	aperture := config.DefocusAngle * math.Pi / 180
	diskRadius := focus * math.Tan(aperture/2)

	pixel00 := config.Center.
		Add(config.Direction.Normalize().Multiply(focus)).
		Subtract(du.Multiply(float64(width) / 2)).
		Subtract(dv.Multiply(float64(height) / 2))

	return &Camera{
		config:  config,
		width:   width,
		height:  height,
		center:  config.Center,
		pixel00: pixel00,
		du:      du,
		dv:      dv,
		diskU:   right.Multiply(diskRadius),
		diskV:   down.Multiply(diskRadius),
	}, nil
}

// GetRay returns a unit-direction ray through a jittered point inside pixel (row, col)
func (c *Camera) GetRay(row, col int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	pixel := c.pixel00.
		Add(c.dv.Multiply(float64(row) + jitter.Y)).
		Add(c.du.Multiply(float64(col) + jitter.X))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = c.center.Add(c.diskU.Multiply(p.X)).Add(c.diskV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixel.Subtract(origin).Normalize())
}

// Width returns the image width the camera was built for
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height the camera was built for
func (c *Camera) Height() int {
	return c.height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
