package orbitcam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitZoomCamera is a 3dsMax / Blender style camera controller that orbits,
// pans and zooms around a target point, driven by input events. It is plain
// state with no internal synchronization; one caller owns and mutates it.
type OrbitZoomCamera struct {
	// Target is the world point the camera orbits.
	Target mgl32.Vec3

	// Rotation is the camera orientation, derived from Yaw and Pitch.
	Rotation mgl32.Quat

	// Yaw and Pitch accumulate in radians without bounds. After setting
	// either directly, call Init so Rotation catches up.
	Yaw   float32
	Pitch float32

	// Distance from the camera to the target.
	Distance float32

	// DistanceNearLimit and DistanceFarLimit bound zooming. Set these to
	// the near and far clipping distances.
	DistanceNearLimit float32
	DistanceFarLimit  float32

	// Settings for the camera.
	Settings Settings

	mode Mode
}

// New creates a camera orbiting target with the given settings.
func New(target mgl32.Vec3, settings Settings) *OrbitZoomCamera {
	// An absent modifier key acts as if it were always held.
	var mode Mode
	if settings.OrbitMod == ButtonNone {
		mode |= ModeOrbitMod
	}
	if settings.ZoomMod == ButtonNone {
		mode |= ModeZoomMod
	}
	if settings.PanMod == ButtonNone {
		mode |= ModePanMod
	}

	return &OrbitZoomCamera{
		Target:            target,
		Rotation:          mgl32.QuatIdent(),
		Distance:          10,
		DistanceNearLimit: 0.1,
		DistanceFarLimit:  1000,
		Settings:          settings,
		mode:              mode,
	}
}

func rotationFromYawPitch(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
}

// Init recomputes Rotation from Yaw and Pitch, so that the next call to
// Camera sees a consistent orientation.
func (c *OrbitZoomCamera) Init() {
	c.Rotation = rotationFromYawPitch(c.Yaw, c.Pitch)
}

func (c *OrbitZoomCamera) isOrbit() bool {
	return c.mode.Contains(ModeOrbitButton | ModeOrbitMod)
}

func (c *OrbitZoomCamera) isZoom() bool {
	return c.mode.Contains(ModeZoomButton | ModeZoomMod)
}

func (c *OrbitZoomCamera) isPan() bool {
	return c.mode.Contains(ModePanButton | ModePanMod)
}

// ControlCamera applies a motion delta: panning if the pan action is active,
// otherwise zooming, otherwise orbiting. The delta does nothing if no action
// is active.
func (c *OrbitZoomCamera) ControlCamera(dx, dy float32) {
	switch {
	case c.isPan():
		// Pan the target along the plane normal to the view direction,
		// scaled by distance so apparent speed stays zoom independent.
		px := dx * c.Settings.PanSpeed * c.Distance
		py := dy * c.Settings.PanSpeed * c.Distance

		right := c.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
		up := c.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
		c.Target = c.Target.Add(up.Mul(py)).Add(right.Mul(px))

	case c.isZoom():
		// Zoom to / from the target.
		dist := c.Distance + dy*c.Settings.ZoomSpeed*c.Distance
		if dist > c.DistanceFarLimit {
			dist = c.DistanceFarLimit
		} else if dist < c.DistanceNearLimit {
			dist = c.DistanceNearLimit
		}
		c.Distance = dist

	case c.isOrbit():
		// Orbit around the target. Yaw and pitch accumulate freely.
		c.Yaw += dx * c.Settings.OrbitSpeed
		c.Pitch += dy * c.Settings.OrbitSpeed * c.Settings.PitchSpeed
		c.Rotation = rotationFromYawPitch(c.Yaw, c.Pitch)
	}
}

// modKeyHeld reports whether a configured modifier key is currently held.
// Only the first configured modifier, checked in orbit, zoom, pan order, is
// inspected.
func (c *OrbitZoomCamera) modKeyHeld() bool {
	if c.Settings.OrbitMod != ButtonNone {
		return c.mode.Contains(ModeOrbitMod)
	}
	if c.Settings.ZoomMod != ButtonNone {
		return c.mode.Contains(ModeZoomMod)
	}
	if c.Settings.PanMod != ButtonNone {
		return c.mode.Contains(ModePanMod)
	}
	return false
}

// HandleEvent feeds one input notification to the camera. Press and release
// of bound buttons update the mode bits, motion and scroll resolve into a
// ControlCamera call, everything else is ignored.
func (c *OrbitZoomCamera) HandleEvent(e Event) {
	switch e := e.(type) {
	case ScrollEvent:
		// With no modifier key down, scrolling borrows the default
		// scroll action for just this event.
		var restore bool
		if !c.modKeyHeld() {
			restore = !c.mode.Contains(c.Settings.ScrollMode)
			c.mode |= c.Settings.ScrollMode
		}
		c.ControlCamera(float32(e.DX), float32(e.DY))
		if restore {
			c.mode &^= c.Settings.ScrollMode
		}

	case MotionEvent:
		c.ControlCamera(float32(-e.DX), float32(e.DY))

	case PressEvent:
		c.setModeBits(e.Button, true)

	case ReleaseEvent:
		c.setModeBits(e.Button, false)
	}
}

func (c *OrbitZoomCamera) setModeBits(b Button, held bool) {
	bindings := [...]struct {
		button Button
		bit    Mode
	}{
		{c.Settings.OrbitButton, ModeOrbitButton},
		{c.Settings.PanButton, ModePanButton},
		{c.Settings.ZoomButton, ModeZoomButton},
		{c.Settings.OrbitMod, ModeOrbitMod},
		{c.Settings.PanMod, ModePanMod},
		{c.Settings.ZoomMod, ModeZoomMod},
	}
	for _, bind := range bindings {
		// ButtonNone bindings stay preset and never react to events.
		if bind.button == ButtonNone || bind.button != b {
			continue
		}
		if held {
			c.mode |= bind.bit
		} else {
			c.mode &^= bind.bit
		}
	}
}

// Camera returns the renderable camera for the current state: positioned
// behind the target along the local forward axis by Distance, oriented by
// Rotation. The dt argument is reserved for time based smoothing and is
// currently unused.
func (c *OrbitZoomCamera) Camera(dt float64) Camera {
	targetToCamera := c.Rotation.Rotate(mgl32.Vec3{0, 0, c.Distance})
	cam := NewCamera(c.Target.Add(targetToCamera))
	cam.SetRotation(c.Rotation)
	return cam
}
