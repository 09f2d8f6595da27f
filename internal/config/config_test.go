package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Food-Throw/internal/game"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Binding(ActionThrowSelected); got != "SPACE" {
		t.Fatalf("throw_selected_ammo = %q, want SPACE", got)
	}
	if c.Fullscreen() || !c.MusicOn() {
		t.Fatalf("fullscreen=%v music=%v, want false/true", c.Fullscreen(), c.MusicOn())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default file not written: %v", err)
	}
	for _, want := range []string{"[KeyBindings]", "[Settings]", "move_up", "music_on"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("written file missing %q:\n%s", want, data)
		}
	}
}

func TestLoad_BackfillsMissingOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	partial := "[KeyBindings]\nmove_up = I\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Binding(ActionMoveUp); got != "I" {
		t.Fatalf("existing binding overwritten: %q", got)
	}
	if got := c.Binding(ActionMoveDown); got != "S" {
		t.Fatalf("move_down = %q, want back-filled S", got)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "fullscreen") {
		t.Fatalf("back-filled file not saved:\n%s", data)
	}
}

func TestUpdateKeybinding_RejectsDuplicate(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "config.ini"))
	if err != nil {
		t.Fatal(err)
	}
	err = c.UpdateKeybinding(ActionMoveUp, "s")
	if !errors.Is(err, ErrDuplicateBinding) {
		t.Fatalf("err = %v, want ErrDuplicateBinding", err)
	}
	if got := c.Binding(ActionMoveUp); got != "W" {
		t.Fatalf("prior binding lost: %q", got)
	}

	if err := c.UpdateKeybinding(ActionMoveUp, "up"); err != nil {
		t.Fatalf("UpdateKeybinding: %v", err)
	}
	if a, ok := c.ActionFor("UP"); !ok || a != ActionMoveUp {
		t.Fatalf("ActionFor(UP) = %q, %v", a, ok)
	}

	// Rebinding an action to its own key is allowed.
	if err := c.UpdateKeybinding(ActionMoveDown, "S"); err != nil {
		t.Fatalf("rebinding own key: %v", err)
	}
}

func TestUpdateKeybinding_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	c, _ := Load(path)
	if err := c.UpdateKeybinding(ActionThrowHoney, "h"); err != nil {
		t.Fatal(err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := again.Binding(ActionThrowHoney); got != "H" {
		t.Fatalf("reloaded throw_honey = %q, want H", got)
	}
}

func TestUnknownNames(t *testing.T) {
	c := Default()
	if err := c.UpdateKeybinding("jump", "J"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
	if _, err := c.ToggleSetting("volume"); !errors.Is(err, ErrUnknownSetting) {
		t.Fatalf("err = %v, want ErrUnknownSetting", err)
	}
}

func TestToggleAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.ini")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	v, err := c.ToggleSetting(SettingMusic)
	if err != nil || v {
		t.Fatalf("toggle music = %v, %v; want false", v, err)
	}
	if err := c.UpdateKeybinding(ActionSelectLeft, "Q"); err != nil {
		t.Fatal(err)
	}
	if err := c.ResetToDefaults(); err != nil {
		t.Fatal(err)
	}
	again, _ := Load(path)
	if !again.MusicOn() || again.Binding(ActionSelectLeft) != "A" {
		t.Fatalf("reset not persisted: music=%v left=%s", again.MusicOn(), again.Binding(ActionSelectLeft))
	}
}

func TestActionCommands(t *testing.T) {
	seen := map[game.Command]bool{}
	for _, a := range Actions {
		cmd, ok := a.Command()
		if !ok {
			t.Fatalf("%s has no command", a)
		}
		if seen[cmd] {
			t.Fatalf("%s maps to an already used command %s", a, cmd)
		}
		seen[cmd] = true
	}
	if got := ActionThrowSelected.Label(); got != "Throw Selected Ammo" {
		t.Fatalf("Label = %q", got)
	}
}

func TestReadEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/ft.ini")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvArtDir, "")
	e, err := ReadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if e.ConfigPath != "/tmp/ft.ini" || !e.HasSeed || e.Seed != 1234 || e.ArtDir != "" {
		t.Fatalf("ReadEnv = %+v", e)
	}

	t.Setenv(EnvSeed, "abc")
	if _, err := ReadEnv(); err == nil {
		t.Fatalf("malformed seed accepted")
	}
}

func TestLoadEnv_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FOODTHROW_ART=sprites\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvArtDir, "")
	os.Unsetenv(EnvArtDir)
	if err := LoadEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv(EnvArtDir); got != "sprites" {
		t.Fatalf("%s = %q", EnvArtDir, got)
	}
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}
