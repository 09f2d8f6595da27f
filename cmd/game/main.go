package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Food-Throw/internal/app"
	"github.com/Garsondee/Food-Throw/internal/audio"
	"github.com/Garsondee/Food-Throw/internal/config"
	"github.com/Garsondee/Food-Throw/internal/game"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	env, err := config.ReadEnv()
	if err != nil {
		log.Fatal(err)
	}

	cfgPath := config.DefaultPath
	if env.ConfigPath != "" {
		cfgPath = env.ConfigPath
	}
	var (
		artDir  = env.ArtDir
		seed    = env.Seed
		level   int
		verbose bool
	)
	flag.StringVar(&cfgPath, "config", cfgPath, "INI settings file")
	flag.StringVar(&artDir, "art", artDir, "directory of PNG sprites; empty draws shapes")
	flag.Int64Var(&seed, "seed", seed, "RNG seed for the first round, 0 for clock-seeded")
	flag.IntVar(&level, "level", 1, "starting level")
	flag.BoolVar(&verbose, "verbose", false, "log moves, rejected throws and exits")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	assets, err := app.LoadAssets(artDir)
	if err != nil {
		log.Fatal(err)
	}

	sound := audio.NewSoundManager(cfg.MusicOn())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	ebiten.SetWindowTitle("Food Throw")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetFullscreen(cfg.Fullscreen())

	a := app.New(app.Options{
		Config:  cfg,
		Sound:   sound,
		Assets:  assets,
		Seed:    seed,
		Level:   level,
		Verbose: verbose,
	})
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
