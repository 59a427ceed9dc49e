package orbitcam

// Button identifies a physical input: a mouse button or a keyboard key.
// Buttons are opaque and compared only for equality. ButtonNone marks an
// unbound optional modifier and never appears in events.
type Button int

const (
	ButtonNone Button = iota
	MouseLeft
	MouseRight
	MouseMiddle
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyTab
	KeyShift
	KeyControl
	KeyAlt
)

// Event is a single input notification delivered to the camera. The event
// source (windowing layer, replay file, test) owns the dispatch loop; the
// camera only consumes.
type Event interface {
	event()
}

// PressEvent reports a mouse button or key going down.
type PressEvent struct {
	Button Button
}

// ReleaseEvent reports a mouse button or key going up.
type ReleaseEvent struct {
	Button Button
}

// MotionEvent reports relative pointer motion in screen units.
type MotionEvent struct {
	DX, DY float64
}

// ScrollEvent reports scroll wheel motion.
type ScrollEvent struct {
	DX, DY float64
}

func (PressEvent) event()   {}
func (ReleaseEvent) event() {}
func (MotionEvent) event()  {}
func (ScrollEvent) event()  {}
