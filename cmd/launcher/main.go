package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/engmath/mathtools/internal/launcher"
	"github.com/engmath/mathtools/pkg/logging"
)

// exitFatal is returned when the toolbox could not be launched at all or
// the environment could not be restored. It is distinct from any exit
// code the toolbox itself uses.
const exitFatal = 2

func main() {
	log := logging.NewLogger(logging.INFO, false)

	home := os.Getenv("MATHTOOLS_HOME")
	if home == "" {
		exe, err := os.Executable()
		if err != nil {
			log.Error("Cannot locate own executable", map[string]interface{}{"error": err.Error()})
			os.Exit(exitFatal)
		}
		home = filepath.Dir(exe)
	}

	code, err := launcher.Run(context.Background(), home, filepath.Join(home, "mathtools"))
	if err != nil {
		log.Error("Launch failed", map[string]interface{}{
			"home":  home,
			"error": err.Error(),
		})
		var envErr *launcher.EnvironmentError
		if errors.As(err, &envErr) && code == 0 {
			os.Exit(exitFatal)
		}
	}

	// Signal deaths come back as -1; keep the exit status meaningful.
	if code < 0 {
		code = 1
	}
	os.Exit(code)
}
