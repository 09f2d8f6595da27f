package term

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Food-Throw/internal/config"
	"github.com/Garsondee/Food-Throw/internal/game"
)

// termKey is a terminal key: a special key, or KeyRune plus a lower-case
// rune.
type termKey struct {
	key tcell.Key
	ch  rune
}

var specialKeys = map[string]tcell.Key{
	"UP":        tcell.KeyUp,
	"DOWN":      tcell.KeyDown,
	"LEFT":      tcell.KeyLeft,
	"RIGHT":     tcell.KeyRight,
	"ENTER":     tcell.KeyEnter,
	"RETURN":    tcell.KeyEnter,
	"TAB":       tcell.KeyTab,
	"BACKSPACE": tcell.KeyBackspace2,
}

// termKeyFor resolves an INI key name. Single characters match regardless
// of case.
func termKeyFor(name string) (termKey, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "SPACE" {
		return termKey{key: tcell.KeyRune, ch: ' '}, true
	}
	if k, ok := specialKeys[name]; ok {
		return termKey{key: k}, true
	}
	if r := []rune(name); len(r) == 1 && unicode.IsPrint(r[0]) {
		return termKey{key: tcell.KeyRune, ch: unicode.ToLower(r[0])}, true
	}
	return termKey{}, false
}

func keyOf(ev *tcell.EventKey) termKey {
	if ev.Key() == tcell.KeyRune {
		return termKey{key: tcell.KeyRune, ch: unicode.ToLower(ev.Rune())}
	}
	if ev.Key() == tcell.KeyBackspace {
		return termKey{key: tcell.KeyBackspace2}
	}
	return termKey{key: ev.Key()}
}

// bindings maps terminal keys onto round commands.
type bindings map[termKey]game.Command

func newBindings(cfg *config.Config) (bindings, []string) {
	b := bindings{}
	var unknown []string
	for _, a := range config.Actions {
		cmd, ok := a.Command()
		if !ok {
			continue
		}
		name := cfg.Binding(a)
		k, ok := termKeyFor(name)
		if !ok {
			unknown = append(unknown, string(a)+"="+name)
			continue
		}
		b[k] = cmd
	}
	return b, unknown
}

func (b bindings) commandFor(ev *tcell.EventKey) (game.Command, bool) {
	cmd, ok := b[keyOf(ev)]
	return cmd, ok
}

// isQuit matches Esc, Ctrl-C and q.
func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
