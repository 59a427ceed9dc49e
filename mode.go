package orbitcam

// Mode tracks which control buttons and modifier keys are currently held.
// An action engages only when both its button bit and its modifier bit are
// set; the modifier bit of an action with no configured modifier key is
// preset at construction and never cleared.
type Mode uint8

const (
	ModeOrbitButton Mode = 1 << iota
	ModeZoomButton
	ModePanButton
	ModeOrbitMod
	ModeZoomMod
	ModePanMod
)

// Contains reports whether every bit in bits is set.
func (m Mode) Contains(bits Mode) bool {
	return m&bits == bits
}
