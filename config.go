package orbitcam

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the on-disk YAML form of Settings. Buttons and keys are
// referenced by name; fields left empty keep their DefaultSettings value.
//
//	bindings:
//	  orbit_button: mouse-left
//	  zoom_button: mouse-right
//	  pan_button: mouse-left
//	  pan_mod: shift
//	scroll_action: zoom
//	speeds:
//	  orbit: 0.05
//	  pitch: 0.1
//	  pan: 0.1
//	  zoom: 0.1
type SettingsFile struct {
	Bindings     BindingsConfig `yaml:"bindings"`
	ScrollAction string         `yaml:"scroll_action"`
	Speeds       SpeedsConfig   `yaml:"speeds"`
}

type BindingsConfig struct {
	OrbitButton string `yaml:"orbit_button"`
	ZoomButton  string `yaml:"zoom_button"`
	PanButton   string `yaml:"pan_button"`
	OrbitMod    string `yaml:"orbit_mod"`
	ZoomMod     string `yaml:"zoom_mod"`
	PanMod      string `yaml:"pan_mod"`
}

type SpeedsConfig struct {
	Orbit *float32 `yaml:"orbit"`
	Pitch *float32 `yaml:"pitch"`
	Pan   *float32 `yaml:"pan"`
	Zoom  *float32 `yaml:"zoom"`
}

// LoadSettings reads a YAML settings file and resolves it into Settings.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return file.Settings()
}

// Settings resolves the file form into a Settings value, starting from
// DefaultSettings and overriding whatever the file names.
func (f SettingsFile) Settings() (Settings, error) {
	s := DefaultSettings()

	type binding struct {
		field    string
		name     string
		dst      *Button
		modifier bool
	}
	for _, b := range []binding{
		{"bindings.orbit_button", f.Bindings.OrbitButton, &s.OrbitButton, false},
		{"bindings.zoom_button", f.Bindings.ZoomButton, &s.ZoomButton, false},
		{"bindings.pan_button", f.Bindings.PanButton, &s.PanButton, false},
		{"bindings.orbit_mod", f.Bindings.OrbitMod, &s.OrbitMod, true},
		{"bindings.zoom_mod", f.Bindings.ZoomMod, &s.ZoomMod, true},
		{"bindings.pan_mod", f.Bindings.PanMod, &s.PanMod, true},
	} {
		if b.name == "" {
			continue
		}
		btn, ok := buttonNames[b.name]
		if !ok {
			return Settings{}, fmt.Errorf("%s: unknown button %q", b.field, b.name)
		}
		if btn == ButtonNone && !b.modifier {
			return Settings{}, fmt.Errorf("%s: action buttons cannot be unbound", b.field)
		}
		*b.dst = btn
	}

	switch f.ScrollAction {
	case "":
	case "orbit":
		s.ScrollMode = ModeOrbitButton
	case "zoom":
		s.ScrollMode = ModeZoomButton
	case "pan":
		s.ScrollMode = ModePanButton
	default:
		return Settings{}, fmt.Errorf("scroll_action: unknown action %q", f.ScrollAction)
	}

	if f.Speeds.Orbit != nil {
		s.OrbitSpeed = *f.Speeds.Orbit
	}
	if f.Speeds.Pitch != nil {
		s.PitchSpeed = *f.Speeds.Pitch
	}
	if f.Speeds.Pan != nil {
		s.PanSpeed = *f.Speeds.Pan
	}
	if f.Speeds.Zoom != nil {
		s.ZoomSpeed = *f.Speeds.Zoom
	}

	return s, nil
}

// "none" is accepted for modifiers so a file can explicitly unbind one that
// DefaultSettings sets.
var buttonNames = map[string]Button{
	"none":         ButtonNone,
	"mouse-left":   MouseLeft,
	"mouse-right":  MouseRight,
	"mouse-middle": MouseMiddle,
	"a":            KeyA,
	"b":            KeyB,
	"c":            KeyC,
	"d":            KeyD,
	"e":            KeyE,
	"f":            KeyF,
	"g":            KeyG,
	"h":            KeyH,
	"i":            KeyI,
	"j":            KeyJ,
	"k":            KeyK,
	"l":            KeyL,
	"m":            KeyM,
	"n":            KeyN,
	"o":            KeyO,
	"p":            KeyP,
	"q":            KeyQ,
	"r":            KeyR,
	"s":            KeyS,
	"t":            KeyT,
	"u":            KeyU,
	"v":            KeyV,
	"w":            KeyW,
	"x":            KeyX,
	"y":            KeyY,
	"z":            KeyZ,
	"space":        KeySpace,
	"tab":          KeyTab,
	"shift":        KeyShift,
	"control":      KeyControl,
	"ctrl":         KeyControl,
	"alt":          KeyAlt,
}
