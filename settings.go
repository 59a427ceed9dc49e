package orbitcam

// Settings binds physical inputs and speed tuning to the camera actions.
// The With* setters return a modified copy, so a Settings value can be
// built up fluently from DefaultSettings without ever being half-configured.
type Settings struct {
	// Which mouse button to press to orbit with the mouse.
	OrbitButton Button

	// Which mouse button to press to zoom with the mouse.
	ZoomButton Button

	// Which mouse button to press to pan with the mouse.
	PanButton Button

	// Optional modifier keys per action. ButtonNone means the button
	// alone suffices.
	OrbitMod Button
	ZoomMod  Button
	PanMod   Button

	// ScrollMode holds the Mode bits force-enabled while handling a
	// scroll event when no configured modifier key is held.
	ScrollMode Mode

	// Orbiting speed (arbitrary unit).
	OrbitSpeed float32

	// Pitch speed relative to OrbitSpeed. Set negative to reverse the
	// pitch direction.
	PitchSpeed float32

	// Panning speed (arbitrary unit).
	PanSpeed float32

	// Zoom speed (arbitrary unit).
	ZoomSpeed float32
}

// DefaultSettings orbits with the left mouse button or two-finger scroll,
// zooms with the right mouse button or the scroll wheel, and pans with the
// left mouse button while shift is held.
func DefaultSettings() Settings {
	return Settings{
		OrbitButton: MouseLeft,
		ZoomButton:  MouseRight,
		PanButton:   MouseLeft,
		OrbitMod:    ButtonNone,
		ZoomMod:     ButtonNone,
		PanMod:      KeyShift,
		ScrollMode:  ModeZoomButton,
		OrbitSpeed:  0.05,
		PitchSpeed:  0.1,
		PanSpeed:    0.1,
		ZoomSpeed:   0.1,
	}
}

// WithOrbitButton sets the button for orbiting.
func (s Settings) WithOrbitButton(b Button) Settings {
	s.OrbitButton = b
	return s
}

// WithZoomButton sets the button for zooming.
func (s Settings) WithZoomButton(b Button) Settings {
	s.ZoomButton = b
	return s
}

// WithPanButton sets the button for panning.
func (s Settings) WithPanButton(b Button) Settings {
	s.PanButton = b
	return s
}

// WithScrollMode sets what scrolling does by default.
func (s Settings) WithScrollMode(m Mode) Settings {
	s.ScrollMode = m
	return s
}

// WithOrbitSpeed sets the orbit speed modifier.
func (s Settings) WithOrbitSpeed(speed float32) Settings {
	s.OrbitSpeed = speed
	return s
}

// WithPitchSpeed sets the pitch speed modifier.
func (s Settings) WithPitchSpeed(speed float32) Settings {
	s.PitchSpeed = speed
	return s
}

// WithPanSpeed sets the pan speed modifier.
func (s Settings) WithPanSpeed(speed float32) Settings {
	s.PanSpeed = speed
	return s
}

// WithZoomSpeed sets the zoom speed modifier.
func (s Settings) WithZoomSpeed(speed float32) Settings {
	s.ZoomSpeed = speed
	return s
}
