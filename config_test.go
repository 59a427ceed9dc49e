package orbitcam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "camera.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettingsFile(t, `
bindings:
  orbit_button: mouse-middle
  zoom_button: mouse-right
  pan_button: mouse-middle
  pan_mod: alt
scroll_action: orbit
speeds:
  orbit: 0.2
  pitch: -1
`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.OrbitButton != MouseMiddle || s.ZoomButton != MouseRight || s.PanButton != MouseMiddle {
		t.Errorf("Unexpected buttons: %+v", s)
	}
	if s.PanMod != KeyAlt {
		t.Errorf("Expected alt pan modifier, got %v", s.PanMod)
	}
	if s.ScrollMode != ModeOrbitButton {
		t.Errorf("Expected scroll to orbit, got %v", s.ScrollMode)
	}
	if s.OrbitSpeed != 0.2 || s.PitchSpeed != -1 {
		t.Errorf("Unexpected speeds: %+v", s)
	}
	// Untouched fields keep their defaults.
	if s.PanSpeed != 0.1 || s.ZoomSpeed != 0.1 {
		t.Errorf("Expected default pan/zoom speeds, got %+v", s)
	}
}

func TestLoadSettings_EmptyFileKeepsDefaults(t *testing.T) {
	path := writeSettingsFile(t, "")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestLoadSettings_UnboundModifier(t *testing.T) {
	path := writeSettingsFile(t, `
bindings:
  pan_mod: none
`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.PanMod != ButtonNone {
		t.Errorf("Expected unbound pan modifier, got %v", s.PanMod)
	}
}

func TestLoadSettings_UnknownButtonName(t *testing.T) {
	path := writeSettingsFile(t, `
bindings:
  zoom_button: mouse-4
`)

	_, err := LoadSettings(path)
	if err == nil {
		t.Fatal("Expected an error for an unknown button name")
	}
	if !strings.Contains(err.Error(), "bindings.zoom_button") {
		t.Errorf("Error should name the offending field, got: %v", err)
	}
}

func TestLoadSettings_ActionButtonCannotBeNone(t *testing.T) {
	path := writeSettingsFile(t, `
bindings:
  orbit_button: none
`)

	_, err := LoadSettings(path)
	if err == nil {
		t.Fatal("Expected an error when unbinding an action button")
	}
}

func TestLoadSettings_UnknownScrollAction(t *testing.T) {
	path := writeSettingsFile(t, "scroll_action: fly\n")

	_, err := LoadSettings(path)
	if err == nil {
		t.Fatal("Expected an error for an unknown scroll action")
	}
	if !strings.Contains(err.Error(), "fly") {
		t.Errorf("Error should name the bad action, got: %v", err)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestLoadSettings_MalformedYAML(t *testing.T) {
	path := writeSettingsFile(t, "bindings: [not a map")

	_, err := LoadSettings(path)
	if err == nil {
		t.Fatal("Expected a parse error")
	}
}
