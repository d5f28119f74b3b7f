// Package camera provides the orbiting preview camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/courtdesigner/pkg/math"
)

// Court preview defaults.
var (
	DefaultPosition = math.Vec3{X: 0, Y: 8, Z: 20}
	DefaultTarget   = math.Vec3{X: 0, Y: 2, Z: 0}
)

const (
	DefaultFOV         = 50 * gomath.Pi / 180
	DefaultMinDistance = 5
	DefaultMaxDistance = 40
	// DefaultMaxPolar keeps the camera above the ground plane.
	DefaultMaxPolar = gomath.Pi / 2.1
	nearPlane       = 0.1
	farPlane        = 1000
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	CenterX, CenterY, CenterZ float32

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (elevation above the horizon, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32

	FOV float32
}

// NewOrbitCamera creates the court preview camera: placed at
// DefaultPosition, looking at DefaultTarget.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		MinDistance:     DefaultMinDistance,
		MaxDistance:     DefaultMaxDistance,
		MinPitch:        float32(gomath.Pi/2 - DefaultMaxPolar),
		MaxPitch:        float32(gomath.Pi/2 - 0.01),
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.002,
		FOV:             DefaultFOV,
	}
	c.LookFrom(DefaultPosition, DefaultTarget)
	return c
}

// LookFrom places the camera at position orbiting target. Distance and
// pitch are clamped to the camera's limits.
func (c *OrbitCamera) LookFrom(position, target math.Vec3) {
	c.SetCenter(target.X, target.Y, target.Z)
	d := position.Sub(target)
	c.Distance = d.Length()
	if c.Distance > 0 {
		c.RotationX = float32(gomath.Asin(float64(d.Y / c.Distance)))
		c.RotationY = float32(gomath.Atan2(float64(d.X), float64(d.Z)))
	}
	c.clamp()
}

// Center returns the orbit center.
func (c *OrbitCamera) Center() math.Vec3 {
	return math.Vec3{X: c.CenterX, Y: c.CenterY, Z: c.CenterZ}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return math.Vec3{
		X: c.CenterX + x,
		Y: c.CenterY + y,
		Z: c.CenterZ + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center(), up)
}

// ProjectionMatrix returns the perspective projection for the viewport.
func (c *OrbitCamera) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(c.FOV, aspect, nearPlane, farPlane)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.clamp()
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}

// HandlePan moves the center in the view plane based on mouse drag delta.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	speed := c.Distance * c.PanSensitivity

	// Right vector on the ground plane, up vector is world Y.
	rightX := float32(gomath.Cos(float64(c.RotationY)))
	rightZ := float32(-gomath.Sin(float64(c.RotationY)))

	c.CenterX -= rightX * deltaX * speed
	c.CenterZ -= rightZ * deltaX * speed
	c.CenterY += deltaY * speed
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(x, y, z float32) {
	c.CenterX = x
	c.CenterY = y
	c.CenterZ = z
}

// Reset restores the default framing.
func (c *OrbitCamera) Reset() {
	c.LookFrom(DefaultPosition, DefaultTarget)
}

func (c *OrbitCamera) clamp() {
	c.RotationX = max(c.MinPitch, min(c.MaxPitch, c.RotationX))
	c.Distance = max(c.MinDistance, min(c.MaxDistance, c.Distance))
}
