package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment overrides, usually placed in a .env file next to the binary.
const (
	EnvConfigPath = "FOODTHROW_CONFIG"
	EnvArtDir     = "FOODTHROW_ART"
	EnvSeed       = "FOODTHROW_SEED"
)

// Env holds the environment overrides that were set.
type Env struct {
	ConfigPath string
	ArtDir     string
	Seed       int64
	HasSeed    bool
}

// LoadEnv loads .env files into the process environment. A missing file is
// not an error; variables already set are left alone.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load env: %w", err)
	}
	log.Println("Loaded environment overrides")
	return nil
}

// GetEnvVariable returns the value of v or an error when it is unset.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

// ReadEnv collects the FOODTHROW_* overrides. Only a malformed seed is an
// error; unset variables leave their fields empty.
func ReadEnv() (Env, error) {
	var e Env
	if v, err := GetEnvVariable(EnvConfigPath); err == nil {
		e.ConfigPath = v
	}
	if v, err := GetEnvVariable(EnvArtDir); err == nil {
		e.ArtDir = v
	}
	if v, err := GetEnvVariable(EnvSeed); err == nil {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return e, fmt.Errorf("config: %s=%q: %w", EnvSeed, v, err)
		}
		e.Seed, e.HasSeed = seed, true
	}
	return e, nil
}
