package orbitcam

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowAdapter translates glfw input callbacks into camera events. The
// caller keeps ownership of the window and its poll loop; Attach only
// registers callbacks.
type WindowAdapter struct {
	handler func(Event)
	log     Logger

	lastX, lastY float64
	hasCursor    bool
}

// NewWindowAdapter wraps handler, typically (*OrbitZoomCamera).HandleEvent.
// A nil logger disables diagnostics.
func NewWindowAdapter(handler func(Event), logger Logger) *WindowAdapter {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &WindowAdapter{handler: handler, log: logger}
}

// Attach registers mouse button, key, cursor position and scroll callbacks
// on win. Any callbacks previously set on the window are replaced.
func (a *WindowAdapter) Attach(win *glfw.Window) {
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := mouseToButton[button]
		if !ok {
			a.log.Debugf("ignoring unmapped mouse button %d", button)
			return
		}
		a.dispatch(b, action)
	})

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := keyToButton[key]
		if !ok {
			a.log.Debugf("ignoring unmapped key %d", key)
			return
		}
		a.dispatch(b, action)
	})

	// The first cursor position only seeds the delta tracking, otherwise
	// a window whose cursor starts far from the origin would produce one
	// huge synthetic motion.
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if a.hasCursor {
			a.handler(MotionEvent{DX: x - a.lastX, DY: y - a.lastY})
		}
		a.lastX, a.lastY = x, y
		a.hasCursor = true
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		a.handler(ScrollEvent{DX: xoff, DY: yoff})
	})
}

func (a *WindowAdapter) dispatch(b Button, action glfw.Action) {
	switch action {
	case glfw.Press:
		a.handler(PressEvent{Button: b})
	case glfw.Release:
		a.handler(ReleaseEvent{Button: b})
	}
	// glfw.Repeat is dropped; held state is already tracked.
}

var mouseToButton = map[glfw.MouseButton]Button{
	glfw.MouseButtonLeft:   MouseLeft,
	glfw.MouseButtonRight:  MouseRight,
	glfw.MouseButtonMiddle: MouseMiddle,
}

var keyToButton = map[glfw.Key]Button{
	glfw.KeyA:           KeyA,
	glfw.KeyB:           KeyB,
	glfw.KeyC:           KeyC,
	glfw.KeyD:           KeyD,
	glfw.KeyE:           KeyE,
	glfw.KeyF:           KeyF,
	glfw.KeyG:           KeyG,
	glfw.KeyH:           KeyH,
	glfw.KeyI:           KeyI,
	glfw.KeyJ:           KeyJ,
	glfw.KeyK:           KeyK,
	glfw.KeyL:           KeyL,
	glfw.KeyM:           KeyM,
	glfw.KeyN:           KeyN,
	glfw.KeyO:           KeyO,
	glfw.KeyP:           KeyP,
	glfw.KeyQ:           KeyQ,
	glfw.KeyR:           KeyR,
	glfw.KeyS:           KeyS,
	glfw.KeyT:           KeyT,
	glfw.KeyU:           KeyU,
	glfw.KeyV:           KeyV,
	glfw.KeyW:           KeyW,
	glfw.KeyX:           KeyX,
	glfw.KeyY:           KeyY,
	glfw.KeyZ:           KeyZ,
	glfw.KeySpace:       KeySpace,
	glfw.KeyTab:         KeyTab,
	glfw.KeyLeftShift:   KeyShift,
	glfw.KeyLeftControl: KeyControl,
	glfw.KeyLeftAlt:     KeyAlt,
}
