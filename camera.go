package orbitcam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the renderable output of a controller: a world position plus an
// orthonormal basis. It carries no behavior beyond deriving a view matrix.
type Camera struct {
	Position mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3
	Forward  mgl32.Vec3
}

// NewCamera returns an axis-aligned camera at position.
func NewCamera(position mgl32.Vec3) Camera {
	return Camera{
		Position: position,
		Right:    mgl32.Vec3{1, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Forward:  mgl32.Vec3{0, 0, 1},
	}
}

// SetRotation aligns the camera basis with the given orientation.
func (c *Camera) SetRotation(rotation mgl32.Quat) {
	c.Right = rotation.Rotate(mgl32.Vec3{1, 0, 0})
	c.Up = rotation.Rotate(mgl32.Vec3{0, 1, 0})
	c.Forward = rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// Orthogonal returns the world-to-view matrix for the camera basis.
func (c Camera) Orthogonal() mgl32.Mat4 {
	r, u, f, p := c.Right, c.Up, c.Forward, c.Position
	return mgl32.Mat4{
		r.X(), u.X(), f.X(), 0,
		r.Y(), u.Y(), f.Y(), 0,
		r.Z(), u.Z(), f.Z(), 0,
		-r.Dot(p), -u.Dot(p), -f.Dot(p), 1,
	}
}
