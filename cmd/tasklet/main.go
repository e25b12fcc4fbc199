package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/tasklet/adapter/cli"
	cliPassword "github.com/felixgeelhaar/tasklet/adapter/cli/password"
	"github.com/felixgeelhaar/tasklet/adapter/cli/task"
	"github.com/felixgeelhaar/tasklet/internal/tasks/infrastructure/persistence"
	"github.com/felixgeelhaar/tasklet/internal/tasks/store"
	"github.com/felixgeelhaar/tasklet/pkg/config"
	"github.com/felixgeelhaar/tasklet/pkg/observability"
)

func main() {
	// Setup logger
	logger := observability.NewLogger(observability.DefaultLogConfig())

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development", TasksFile: "tasks.json"}
	}

	// Update logger based on config
	logger = observability.NewLogger(observability.LogConfig{
		Level:  observability.LogLevel(cfg.LogLevel),
		Format: observability.LogFormat(cfg.LogFormat),
	})
	cli.SetLogger(logger)

	// Wire the task engine against its storage file
	repo, err := persistence.NewJSONTaskRepository(cfg.TasksFile)
	if err != nil {
		logger.Error("invalid tasks file path", "path", cfg.TasksFile, "error", err)
		os.Exit(1)
	}

	taskStore, err := store.Open(ctx, repo, logger)
	if err != nil {
		// Degrade to an empty list rather than aborting; mutations will
		// still persist to the configured file.
		logger.Warn("failed to load tasks, starting with an empty list", "path", repo.Path(), "error", err)
	}

	cli.SetApp(cli.NewApp(taskStore))

	// Register commands
	cli.AddCommand(task.Cmd)
	cli.AddCommand(cliPassword.Cmd)

	// Execute CLI
	cli.ExecuteContext(ctx)
}
