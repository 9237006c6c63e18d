package main

import (
	"log/slog"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/storage"
	"github.com/jacksmith/td/internal/tasks"
	"github.com/spf13/cobra"
)

// app holds the per-invocation state shared by commands. There is exactly
// one Store per process; commands receive it through app.
type app struct {
	storage *storage.Storage
	config  *storage.Config
	logger  *slog.Logger
	store   *tasks.Store
	list    *tasks.List
}

// openApp finds the nearest .td/, applies configuration and loads the list.
func openApp(cmd *cobra.Command) (*app, error) {
	s, err := storage.Find(".")
	if err != nil {
		return nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if rootLogLevel != "" {
		level = rootLogLevel
	}
	logger, err := cli.NewLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}

	if rootNoColor || !cfg.Color {
		cli.SetColorEnabled(false)
	}

	store := tasks.New(s, tasks.WithLogger(logger))
	list := tasks.NewList(store)
	if err := list.Reload(); err != nil {
		return nil, err
	}

	logger.Debug("opened task list", "root", s.Root(), "path", s.TasksPath(), "tasks", list.Len())
	return &app{
		storage: s,
		config:  cfg,
		logger:  logger,
		store:   store,
		list:    list,
	}, nil
}
