package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"hebi/generation"
)

// Environment variables read by LoadSettings
const (
	EnvSeed       = "HEBI_SEED"
	EnvMap        = "HEBI_MAP"
	EnvMapFile    = "HEBI_MAP_FILE"
	EnvFullscreen = "HEBI_FULLSCREEN"
)

// Settings holds the per-run configuration.
type Settings struct {
	SessionID  uuid.UUID // Identifies this run in logs
	Seed       uint64    // Map generator seed
	MapName    string    // Registered map type name
	MapFile    string    // Optional JSON file with map parameters
	MapParams  []byte    // Contents of MapFile, if any
	Fullscreen bool
}

// LoadSettings reads settings from the environment. Variables from the
// given .env files are loaded first without overriding the process
// environment; with no files, an optional ./.env is used.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Settings{}, fmt.Errorf("failed to load env files: %w", err)
	}

	s := Settings{
		SessionID: uuid.New(),
		MapName:   getEnvWithDefault(EnvMap, generation.MapCorridors),
		MapFile:   os.Getenv(EnvMapFile),
	}

	seed, err := getEnvAsUint64(EnvSeed)
	if err != nil {
		return Settings{}, err
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s.Seed = seed

	if s.Fullscreen, err = getEnvAsBool(EnvFullscreen); err != nil {
		return Settings{}, err
	}

	if s.MapFile != "" {
		s.MapParams, err = os.ReadFile(s.MapFile)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read map file: %w", err)
		}
	}

	return s, nil
}

// LoadMapType resolves the configured map type and its parameters
func (s Settings) LoadMapType() (generation.MapType, error) {
	mapType, err := generation.LoadMapType(s.MapName, s.MapParams)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", s.MapName, err)
	}
	return mapType, nil
}

// LogSummary writes the run configuration to the process log
func (s Settings) LogSummary() {
	log.Printf("[HEBI] [INFO] session %s map=%s seed=%d", s.SessionID, s.MapName, s.Seed)
	if s.MapFile != "" {
		log.Printf("[HEBI] [INFO] map parameters from %s", s.MapFile)
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsUint64 parses an environment variable as an unsigned integer; unset reads as zero.
func getEnvAsUint64(key string) (uint64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an unsigned integer: %w", key, err)
	}
	return n, nil
}

// getEnvAsBool parses an environment variable as a boolean; unset reads as false.
func getEnvAsBool(key string) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}
