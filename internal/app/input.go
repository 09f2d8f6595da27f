package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Food-Throw/internal/config"
	"github.com/Garsondee/Food-Throw/internal/game"
)

// keyNames maps INI key names onto ebiten keys. Letters and digits are
// filled in by init.
var keyNames = map[string]ebiten.Key{
	"SPACE":     ebiten.KeySpace,
	"ENTER":     ebiten.KeyEnter,
	"RETURN":    ebiten.KeyEnter,
	"TAB":       ebiten.KeyTab,
	"UP":        ebiten.KeyArrowUp,
	"DOWN":      ebiten.KeyArrowDown,
	"LEFT":      ebiten.KeyArrowLeft,
	"RIGHT":     ebiten.KeyArrowRight,
	"SHIFT":     ebiten.KeyShiftLeft,
	"CTRL":      ebiten.KeyControlLeft,
	"BACKSPACE": ebiten.KeyBackspace,
	",":         ebiten.KeyComma,
	".":         ebiten.KeyPeriod,
	"/":         ebiten.KeySlash,
	";":         ebiten.KeySemicolon,
	"-":         ebiten.KeyMinus,
	"=":         ebiten.KeyEqual,
}

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		keyNames[string(rune('A'+i))] = k
	}
	digits := []ebiten.Key{
		ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
		ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
	for i, k := range digits {
		keyNames[string(rune('0'+i))] = k
	}
}

// KeyForName resolves an INI key name, case-insensitively.
func KeyForName(name string) (ebiten.Key, bool) {
	k, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// binding pairs a resolved key with the command it issues.
type binding struct {
	key ebiten.Key
	cmd game.Command
}

// Keymap is the resolved set of gameplay bindings.
type Keymap struct {
	bindings []binding
	unknown  []string
}

// NewKeymap resolves every action in cfg. Names ebiten has no key for are
// collected in Unknown and left unbound.
func NewKeymap(cfg *config.Config) Keymap {
	var km Keymap
	for _, a := range config.Actions {
		cmd, ok := a.Command()
		if !ok {
			continue
		}
		name := cfg.Binding(a)
		k, ok := KeyForName(name)
		if !ok {
			km.unknown = append(km.unknown, string(a)+"="+name)
			continue
		}
		km.bindings = append(km.bindings, binding{key: k, cmd: cmd})
	}
	return km
}

// Unknown lists the action=key pairs that could not be resolved.
func (km Keymap) Unknown() []string { return km.unknown }

// CommandFor returns the command bound to k.
func (km Keymap) CommandFor(k ebiten.Key) (game.Command, bool) {
	for _, b := range km.bindings {
		if b.key == k {
			return b.cmd, true
		}
	}
	return 0, false
}

// Pressed returns the commands whose keys went down this frame, in
// action order.
func (km Keymap) Pressed() []game.Command {
	var out []game.Command
	for _, b := range km.bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, b.cmd)
		}
	}
	return out
}

// clickedAt returns the cursor position when the left button went down.
func clickedAt() (float64, float64, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}

// anyKeyJustPressed reports a fresh key or mouse press.
func anyKeyJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}
