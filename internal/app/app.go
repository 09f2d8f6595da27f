// Package app is the ebiten window front-end: title menu, play screen,
// swirl transition, game over and level complete screens.
package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/Garsondee/Food-Throw/internal/audio"
	"github.com/Garsondee/Food-Throw/internal/config"
	"github.com/Garsondee/Food-Throw/internal/game"
)

const (
	maxFrameDelta  = 0.1 // seconds; longer stalls are clamped
	swirlDuration  = 2.0
	inputDelay     = 1.0 // before "press any key" screens accept input
	demoScreenTime = 3.0
	statusDuration = 2.5
)

type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenSwirl
	screenGameOver
	screenLevelComplete
)

var menuOptions = []string{"Start Game", "Watch Demo", "Exit"}

// Options configures New.
type Options struct {
	Config  *config.Config
	Sound   *audio.SoundManager
	Assets  *Assets
	Seed    int64 // 0 seeds each round from the clock
	Level   int   // first level, 1 when zero
	Verbose bool
}

// App implements ebiten.Game.
type App struct {
	cfg    *config.Config
	keys   Keymap
	sound  *audio.SoundManager
	assets *Assets
	face   text.Face
	feed   *Feed
	canvas *ebiten.Image

	screen     screen
	round      *game.Round
	pilot      game.Pilot
	snap       game.Snapshot
	firstLevel int
	level      int
	seed       int64
	rounds     int
	verbose    bool

	menuIndex  int
	frames     int
	screenTime float64
	showFeed   bool
	status     string
	statusTime float64
	last       time.Time
	quit       bool
}

// New builds the app on its title screen.
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.NewSoundManager(cfg.MusicOn())
	}
	level := opts.Level
	if level <= 0 {
		level = 1
	}
	a := &App{
		cfg:        cfg,
		keys:       NewKeymap(cfg),
		sound:      sound,
		assets:     opts.Assets,
		face:       newFace(),
		feed:       NewFeed(),
		canvas:     ebiten.NewImage(game.ScreenWidth, game.ScreenHeight),
		firstLevel: level,
		level:      level,
		seed:       opts.Seed,
		verbose:    opts.Verbose,
	}
	for _, u := range a.keys.Unknown() {
		log.Printf("config: no key named %s, action left unbound", u)
	}
	return a
}

// clampDelta bounds a measured frame time to [0, maxFrameDelta].
func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

func (a *App) tick() float64 {
	now := time.Now()
	dt := game.FixedStep
	if !a.last.IsZero() {
		dt = clampDelta(now.Sub(a.last).Seconds())
	}
	a.last = now
	return dt
}

func (a *App) setScreen(s screen) {
	a.screen = s
	a.frames = 0
	a.screenTime = 0
}

func (a *App) nextSeed() int64 {
	a.rounds++
	if a.seed == 0 {
		return time.Now().UnixNano()
	}
	return a.seed + int64(a.rounds-1)
}

// startLevel swaps in a fresh round for level n.
func (a *App) startLevel(n int) {
	a.level = n
	a.round = game.NewRound(n,
		game.WithSeed(a.nextSeed()),
		game.WithVerbose(a.verbose),
		game.WithTextMeasure(a.measure),
	)
	a.snap = a.round.Snapshot()
	a.feed.Clear()
	a.sound.StartLevelMusic(a.round.Level())
	a.setScreen(screenPlaying)
	log.Printf("level %d %s started (seed %d)", n, a.round.Level().Name, a.round.Seed())
}

func (a *App) flash(msg string) {
	a.status = msg
	a.statusTime = statusDuration
}

func (a *App) Update() error {
	dt := a.tick()
	a.frames++
	a.screenTime += dt
	if a.statusTime > 0 {
		a.statusTime -= dt
	}

	a.handleGlobalKeys()
	if a.quit {
		return ebiten.Termination
	}

	switch a.screen {
	case screenTitle:
		a.updateTitle()
	case screenPlaying:
		a.updatePlaying(dt)
	case screenSwirl:
		if a.screenTime >= swirlDuration {
			a.setScreen(screenLevelComplete)
		}
	case screenGameOver:
		if a.ready() {
			a.startLevel(a.level)
		}
	case screenLevelComplete:
		if a.ready() {
			if next, ok := game.NextLevel(a.level); ok {
				a.startLevel(next.Number)
			} else {
				a.pilot = nil
				a.setScreen(screenTitle)
			}
		}
	}
	return nil
}

// ready reports whether a "press any key" screen should move on.
func (a *App) ready() bool {
	if a.screenTime < inputDelay {
		return false
	}
	if a.pilot != nil {
		return a.screenTime >= demoScreenTime
	}
	return anyKeyJustPressed()
}

func (a *App) handleGlobalKeys() {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) || (alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if _, bound := a.keys.CommandFor(ebiten.KeyM); !bound {
			a.toggleMusic()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.showFeed = !a.showFeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if a.screen == screenTitle {
			a.quit = true
			return
		}
		a.pilot = nil
		a.setScreen(screenTitle)
	}
}

func (a *App) toggleFullscreen() {
	on, err := a.cfg.ToggleSetting(config.SettingFullscreen)
	if err != nil {
		log.Printf("fullscreen: %v", err)
	}
	ebiten.SetFullscreen(on)
}

func (a *App) toggleMusic() {
	on, err := a.cfg.ToggleSetting(config.SettingMusic)
	if err != nil {
		log.Printf("music: %v", err)
	}
	a.sound.SetMusic(on)
	if on {
		a.flash("music on")
	} else {
		a.flash("music off")
	}
}

func (a *App) updateTitle() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		a.menuIndex = (a.menuIndex - 1 + len(menuOptions)) % len(menuOptions)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.menuIndex = (a.menuIndex + 1) % len(menuOptions)
	}
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !ebiten.IsKeyPressed(ebiten.KeyAlt)
	chosen := enter || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if x, y, ok := clickedAt(); ok {
		if i, hit := menuOptionAt(x, y); hit {
			a.menuIndex = i
			chosen = true
		}
	}
	if chosen {
		a.choose(a.menuIndex)
	}
}

func (a *App) choose(i int) {
	switch i {
	case 0:
		a.pilot = nil
		a.startLevel(a.firstLevel)
	case 1:
		a.pilot = game.NewAutopilot()
		a.startLevel(a.firstLevel)
	case 2:
		a.quit = true
	}
}

func (a *App) updatePlaying(dt float64) {
	if a.pilot != nil {
		a.pilot.Drive(a.round)
	} else {
		for _, cmd := range a.keys.Pressed() {
			a.round.Apply(cmd)
		}
		if x, y, ok := clickedAt(); ok {
			a.round.Click(x, y)
		}
	}
	a.round.Step(dt)

	events := a.round.DrainEvents()
	a.sound.HandleEvents(events)
	a.feed.AddEvents(events)
	a.snap = a.round.Snapshot()

	switch a.round.Outcome() {
	case game.OutcomeWon:
		a.setScreen(screenSwirl)
	case game.OutcomeLost:
		a.setScreen(screenGameOver)
	}
	if a.round.Outcome() != game.OutcomePlaying {
		s := a.round.Summarize()
		log.Printf("level %d %s after %.1fs (%s)", s.Level, s.Outcome, s.Elapsed, s.Description)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	switch a.screen {
	case screenTitle:
		a.drawTitle(screen)
	case screenPlaying:
		a.renderRound()
		screen.DrawImage(a.canvas, nil)
	case screenSwirl:
		a.drawSwirl(screen)
	case screenGameOver:
		a.drawGameOver(screen)
	case screenLevelComplete:
		a.drawLevelComplete(screen)
	}
	if a.showFeed {
		a.feed.Draw(screen, 70, game.ScreenHeight-80)
	}
	if a.statusTime > 0 && a.status != "" {
		drawOutlinedText(screen, a.status, a.face, game.ScreenWidth/2, game.ScreenHeight-20, 1.5, hudWhite)
	}
}

// renderRound draws the current snapshot into the canvas. The swirl
// transition keeps spinning the last canvas.
func (a *App) renderRound() {
	a.canvas.Clear()
	a.drawWorld(a.canvas, &a.snap)
	a.drawHUD(a.canvas, &a.snap)
	if a.pilot != nil {
		drawOutlinedText(a.canvas, "DEMO - ESC for menu", a.face, game.ScreenWidth/2, 75, 1.5, hudWhite)
	}
}

func (a *App) Layout(_, _ int) (int, int) {
	return game.ScreenWidth, game.ScreenHeight
}
