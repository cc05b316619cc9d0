package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "MARBLE_CONFIG"
	EnvLogLevel   = "MARBLE_LOG_LEVEL"
	EnvSeed       = "MARBLE_SEED"
	EnvDriverMode = "MARBLE_DRIVER_MODE"
)

// LoadYAML decodes a YAML document over the defaults. Missing keys keep their default.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a YAML config file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FromEnv loads .env files (missing ones are ignored), then builds a config from
// MARBLE_CONFIG if set, applying the remaining MARBLE_* overrides on top.
func FromEnv(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env: %w", err)
	}

	c := Default()
	if path := os.Getenv(EnvConfigPath); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Log.Level = lvl
	}
	if seed := os.Getenv(EnvSeed); seed != "" {
		c.Driver.Seed = seed
	}
	if mode := os.Getenv(EnvDriverMode); mode != "" {
		c.Driver.Mode = DriverMode(mode)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Seed returns the 64-bit seed for the simulation's random source.
// A named seed hashes to the same value on every run.
func (c *Config) Seed() uint64 {
	if c.Driver.Seed == "" {
		return rand.Uint64() ^ uint64(time.Now().UnixNano())
	}
	return xxhash.Sum64String(c.Driver.Seed)
}

// NewRand builds the seeded random source used by the engine.
func (c *Config) NewRand() *rand.Rand {
	seed := c.Seed()
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
