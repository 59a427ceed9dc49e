package orbitcam

import "testing"

// Every button a settings file can name must be deliverable by the window
// adapter, otherwise a binding silently never engages.
func TestWindowAdapter_MappingsCoverNamedButtons(t *testing.T) {
	deliverable := make(map[Button]bool)
	for _, b := range mouseToButton {
		deliverable[b] = true
	}
	for _, b := range keyToButton {
		deliverable[b] = true
	}

	for name, b := range buttonNames {
		if b == ButtonNone {
			continue
		}
		if !deliverable[b] {
			t.Errorf("Button %q has no glfw mapping", name)
		}
	}
}
