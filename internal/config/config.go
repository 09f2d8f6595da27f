// Package config persists key bindings and settings in an INI file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/Garsondee/Food-Throw/internal/game"
)

const (
	sectionKeys     = "KeyBindings"
	sectionSettings = "Settings"

	// DefaultPath is used when neither a flag nor FOODTHROW_CONFIG names a file.
	DefaultPath = "config.ini"
)

var (
	ErrDuplicateBinding = errors.New("key already bound")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownSetting   = errors.New("unknown setting")
)

// Action is a bindable player action. Its value is the INI option name.
type Action string

const (
	ActionMoveUp        Action = "move_up"
	ActionMoveDown      Action = "move_down"
	ActionSelectLeft    Action = "select_left_ammo"
	ActionSelectRight   Action = "select_right_ammo"
	ActionThrowCarrot   Action = "throw_carrot"
	ActionThrowBerry    Action = "throw_berry"
	ActionThrowHoney    Action = "throw_honey"
	ActionThrowSelected Action = "throw_selected_ammo"
)

// Actions lists every bindable action in file order.
var Actions = []Action{
	ActionMoveUp, ActionMoveDown, ActionSelectLeft, ActionSelectRight,
	ActionThrowCarrot, ActionThrowBerry, ActionThrowHoney, ActionThrowSelected,
}

var defaultBindings = map[Action]string{
	ActionMoveUp:        "W",
	ActionMoveDown:      "S",
	ActionSelectLeft:    "A",
	ActionSelectRight:   "D",
	ActionThrowCarrot:   "1",
	ActionThrowBerry:    "2",
	ActionThrowHoney:    "3",
	ActionThrowSelected: "SPACE",
}

// Command maps the action onto the round's input command.
func (a Action) Command() (game.Command, bool) {
	switch a {
	case ActionMoveUp:
		return game.CmdMoveLaneUp, true
	case ActionMoveDown:
		return game.CmdMoveLaneDown, true
	case ActionSelectLeft:
		return game.CmdSelectAmmoLeft, true
	case ActionSelectRight:
		return game.CmdSelectAmmoRight, true
	case ActionThrowCarrot:
		return game.CmdFireCarrot, true
	case ActionThrowBerry:
		return game.CmdFireBerry, true
	case ActionThrowHoney:
		return game.CmdFireHoney, true
	case ActionThrowSelected:
		return game.CmdFireSelected, true
	}
	return 0, false
}

// Label is the action name as shown in menus: "Throw Selected Ammo".
func (a Action) Label() string {
	words := strings.Split(string(a), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Setting names in the Settings section.
const (
	SettingFullscreen = "fullscreen"
	SettingMusic      = "music_on"
)

var defaultSettings = []struct {
	name  string
	value bool
}{
	{SettingFullscreen, false},
	{SettingMusic, true},
}

// Config is the loaded INI file. The zero value is not usable; build one
// with Load or Default.
type Config struct {
	path string
	file *ini.File
}

// Default returns an in-memory config holding the default values. Save on
// it is a no-op.
func Default() *Config {
	c := &Config{file: ini.Empty()}
	c.backfill()
	return c
}

// Load reads path. A missing file is created with defaults; missing
// sections or options are back-filled and the file rewritten.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		c := Default()
		c.path = path
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	c := &Config{path: path, file: f}
	if c.backfill() {
		if err := c.Save(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// backfill adds any missing default option and reports whether it did.
func (c *Config) backfill() bool {
	updated := false
	keys := c.file.Section(sectionKeys)
	for _, a := range Actions {
		if !keys.HasKey(string(a)) {
			keys.Key(string(a)).SetValue(defaultBindings[a])
			updated = true
		}
	}
	settings := c.file.Section(sectionSettings)
	for _, s := range defaultSettings {
		if !settings.HasKey(s.name) {
			settings.Key(s.name).SetValue(formatBool(s.value))
			updated = true
		}
	}
	return updated
}

// Path is the file the config saves to, empty for Default.
func (c *Config) Path() string { return c.path }

// Save writes the config back to its file.
func (c *Config) Save() error {
	if c.path == "" {
		return nil
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := c.file.SaveTo(c.path); err != nil {
		return fmt.Errorf("config: save %s: %w", c.path, err)
	}
	return nil
}

// Binding returns the key bound to a, upper-cased.
func (c *Config) Binding(a Action) string {
	return strings.ToUpper(c.file.Section(sectionKeys).Key(string(a)).String())
}

// ActionFor returns the action bound to key, compared case-insensitively.
func (c *Config) ActionFor(key string) (Action, bool) {
	for _, a := range Actions {
		if strings.EqualFold(c.Binding(a), key) {
			return a, true
		}
	}
	return "", false
}

// UpdateKeybinding binds key to a and saves. A key already used by another
// action is rejected and the old binding kept.
func (c *Config) UpdateKeybinding(a Action, key string) error {
	if _, ok := defaultBindings[a]; !ok {
		return fmt.Errorf("config: %w: %q", ErrUnknownAction, a)
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return fmt.Errorf("config: empty key for %s", a)
	}
	if other, ok := c.ActionFor(key); ok && other != a {
		return fmt.Errorf("config: %w: %s is assigned to %s", ErrDuplicateBinding, key, other.Label())
	}
	c.file.Section(sectionKeys).Key(string(a)).SetValue(key)
	return c.Save()
}

// Setting returns a boolean setting.
func (c *Config) Setting(name string) (bool, error) {
	def, ok := defaultSetting(name)
	if !ok {
		return false, fmt.Errorf("config: %w: %q", ErrUnknownSetting, name)
	}
	return c.file.Section(sectionSettings).Key(name).MustBool(def), nil
}

// ToggleSetting flips a boolean setting, saves, and returns the new value.
func (c *Config) ToggleSetting(name string) (bool, error) {
	v, err := c.Setting(name)
	if err != nil {
		return false, err
	}
	v = !v
	c.file.Section(sectionSettings).Key(name).SetValue(formatBool(v))
	return v, c.Save()
}

// Fullscreen reports the fullscreen setting.
func (c *Config) Fullscreen() bool {
	v, _ := c.Setting(SettingFullscreen)
	return v
}

// MusicOn reports the music setting.
func (c *Config) MusicOn() bool {
	v, _ := c.Setting(SettingMusic)
	return v
}

// ResetToDefaults restores every binding and setting and saves.
func (c *Config) ResetToDefaults() error {
	keys := c.file.Section(sectionKeys)
	for _, a := range Actions {
		keys.Key(string(a)).SetValue(defaultBindings[a])
	}
	settings := c.file.Section(sectionSettings)
	for _, s := range defaultSettings {
		settings.Key(s.name).SetValue(formatBool(s.value))
	}
	return c.Save()
}

func defaultSetting(name string) (bool, bool) {
	for _, s := range defaultSettings {
		if s.name == name {
			return s.value, true
		}
	}
	return false, false
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
