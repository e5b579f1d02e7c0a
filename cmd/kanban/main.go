package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/kanban/internal/board"
	"github.com/jask/kanban/internal/config"
	"github.com/jask/kanban/internal/storage"
	"github.com/jask/kanban/internal/theme"
	"github.com/jask/kanban/internal/tui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "kanban",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", "err", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		logger.Fatal("mkdir data dir", "err", err)
	}

	kv, err := storage.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("open storage", "err", err)
	}
	defer kv.Close()

	if err := kv.Migrate(cfg.Storage.MigrationsPath); err != nil {
		logger.Fatal("migrate storage", "err", err)
	}

	store := board.NewStore(kv, logger)
	themes := theme.NewManager(kv, cfg.UI.Theme)

	p := tea.NewProgram(tui.New(store, themes), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
