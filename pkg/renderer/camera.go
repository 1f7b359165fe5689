package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Approximate up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole
	FocusDistance float64   // Distance to the plane in focus, 0 = |LookFrom - LookAt|
	Time0, Time1  float64   // Shutter open and close times
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
	}
}

// Camera generates rays for rendering. It is immutable after NewCamera.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera builds the viewport from config
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.AspectRatio > 0) || math.IsInf(config.AspectRatio, 0) {
		return nil, core.NewInvalidSceneError("camera aspect ratio must be positive, got %v", config.AspectRatio)
	}
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, core.NewInvalidSceneError("camera vertical fov must be in (0, 180), got %v", config.VFov)
	}
	if config.Aperture < 0 || config.FocusDistance < 0 {
		return nil, core.NewInvalidSceneError("camera aperture and focus distance must not be negative")
	}

	viewDirection := config.LookFrom.Subtract(config.LookAt)
	if viewDirection.NearZero() {
		return nil, core.NewInvalidSceneError("camera look-from and look-at coincide at %v", config.LookFrom)
	}
	w := viewDirection.Normalize()
	u := config.Up.Cross(w)
	if u.NearZero() {
		return nil, core.NewInvalidSceneError("camera up vector %v is parallel to the view direction", config.Up)
	}
	u = u.Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = viewDirection.Length()
	}

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}, nil
}

// GetRay generates a ray for viewport coordinates (s, t), where (0, 0) is the
// lower-left corner and (1, 1) the upper-right. lensSample and timeSample are
// uniform in [0, 1) and pick the lens position and shutter time.
func (c *Camera) GetRay(s, t float64, lensSample core.Vec2, timeSample float64) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		disk := core.SamplePointInUnitDisk(lensSample).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(disk.X)).Add(c.v.Multiply(disk.Y))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	time := c.time0 + timeSample*(c.time1-c.time0)
	return core.NewRayAt(origin, target.Subtract(origin), time)
}
