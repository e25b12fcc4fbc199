package cli

import (
	"sync"

	"github.com/felixgeelhaar/tasklet/internal/tasks/store"
)

// App holds the CLI application dependencies.
type App struct {
	// Store is the task engine every task subcommand talks to.
	Store *store.Store
}

// NewApp creates a CLI application container.
func NewApp(taskStore *store.Store) *App {
	return &App{Store: taskStore}
}

var (
	appMu sync.RWMutex
	app   *App
)

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	appMu.Lock()
	defer appMu.Unlock()
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	appMu.RLock()
	defer appMu.RUnlock()
	return app
}
