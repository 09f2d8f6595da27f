package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/Garsondee/Food-Throw/internal/config"
	"github.com/Garsondee/Food-Throw/internal/term"
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
		seed    = env.Seed
		level   int
		demo    bool
		logPath string
	)
	flag.StringVar(&cfgPath, "config", cfgPath, "INI settings file")
	flag.Int64Var(&seed, "seed", seed, "RNG seed for the first round, 0 for clock-seeded")
	flag.IntVar(&level, "level", 1, "starting level")
	flag.BoolVar(&demo, "demo", false, "let the autopilot play")
	flag.StringVar(&logPath, "log", "", "append logs to this file; discarded when empty")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	// The screen owns the terminal, so logs go elsewhere.
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := term.Run(ctx, term.Options{Config: cfg, Seed: seed, Level: level, Demo: demo}); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
