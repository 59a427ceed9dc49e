package orbitcam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCamera_AxisAligned(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})

	if c.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Unexpected position: %v", c.Position)
	}
	if c.Right != (mgl32.Vec3{1, 0, 0}) || c.Up != (mgl32.Vec3{0, 1, 0}) || c.Forward != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected world-aligned basis, got %v %v %v", c.Right, c.Up, c.Forward)
	}
}

func TestCamera_SetRotation(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.SetRotation(mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0}))

	// A quarter turn about Y carries forward (+Z) onto +X.
	if !c.Forward.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Unexpected forward: %v", c.Forward)
	}
	if !c.Right.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Unexpected right: %v", c.Right)
	}
	if !c.Up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("Unexpected up: %v", c.Up)
	}
}

func TestCamera_OrthogonalMapsPositionToOrigin(t *testing.T) {
	c := NewCamera(mgl32.Vec3{5, -3, 8})
	c.SetRotation(mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}))

	view := c.Orthogonal()
	eye := view.Mul4x1(c.Position.Vec4(1))

	if !eye.ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-5) {
		t.Errorf("View matrix should map the eye to the origin, got %v", eye)
	}
}

func TestCamera_OrthogonalPreservesDistances(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 1, 1})
	c.SetRotation(mgl32.QuatRotate(1.2, mgl32.Vec3{1, 0, 0}))

	view := c.Orthogonal()
	p := mgl32.Vec3{4, 5, 6}
	mapped := view.Mul4x1(p.Vec4(1)).Vec3()

	want := p.Sub(c.Position).Len()
	if got := mapped.Len(); math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("Rigid transform should preserve distance to the eye: got %f, want %f", got, want)
	}
}
