package cli

import (
	"fmt"
	"os"

	"github.com/aminrms/cli-task-manager/internal/config"
	"github.com/aminrms/cli-task-manager/internal/store"
	"github.com/aminrms/cli-task-manager/internal/ui"
)

// env is everything a command needs: loaded config, the data manager,
// and the active theme.
type env struct {
	cfg     *config.Config
	manager *store.Manager
	theme   ui.Theme
}

// loadEnv loads the configuration (running the first-time setup wizard
// when no settings file exists yet) and opens the data manager.
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cfg.FirstRun {
		if err := cfg.RunSetup(os.Stdin, os.Stdout); err != nil {
			return nil, fmt.Errorf("setup failed: %w", err)
		}
	}

	manager, err := store.New(cfg)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		manager: manager,
		theme:   ui.NewTheme(cfg.Theme),
	}, nil
}

// printWarnings surfaces non-fatal row warnings from a load or import.
func (e *env) printWarnings(warnings []store.RowWarning) {
	if s := ui.RenderWarnings(e.theme, warnings); s != "" {
		fmt.Fprint(os.Stderr, s)
	}
}
