package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// baseEnv holds root defaults from RIVEGOLDEN_* variables.
type baseEnv struct {
	// LogLevel is the logging level from RIVEGOLDEN_LOG_LEVEL.
	LogLevel string `env:"RIVEGOLDEN_LOG_LEVEL"`
}

// renderEnv holds render defaults. Zero values leave the flag default.
type renderEnv struct {
	Rivs        string `env:"RIVEGOLDEN_RIVS"`
	Destination string `env:"RIVEGOLDEN_DESTINATION"`
	Cell        int    `env:"RIVEGOLDEN_CELL"`
	Grid        int    `env:"RIVEGOLDEN_GRID"`
	Gap         *int   `env:"RIVEGOLDEN_GAP"`
	Artboard    string `env:"RIVEGOLDEN_ARTBOARD"`
	Animation   string `env:"RIVEGOLDEN_ANIMATION"`
	Verbose     bool   `env:"RIVEGOLDEN_VERBOSE"`
}

// loadEnvironment returns the variables of path overlaid by the process
// environment. A missing file is only an error when required is set.
func loadEnvironment(path string, required bool) (map[string]string, error) {
	vars := map[string]string{}
	if path != "" {
		fileVars, err := godotenv.Read(path)
		switch {
		case err == nil:
			vars = fileVars
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("load env file %q: %w", path, err)
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = v
		}
	}
	return vars, nil
}

func parseEnv(target any, vars map[string]string) error {
	if err := envparse.ParseWithOptions(target, envparse.Options{Environment: vars}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
