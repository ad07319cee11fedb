package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/tiwariParth/go-task-manager/internal/app"
	"github.com/tiwariParth/go-task-manager/internal/cli"
	"github.com/tiwariParth/go-task-manager/internal/config"
	"github.com/tiwariParth/go-task-manager/internal/logger"
	"github.com/tiwariParth/go-task-manager/internal/storage"
	"github.com/tiwariParth/go-task-manager/internal/storage/file"
	"github.com/tiwariParth/go-task-manager/internal/storage/memory"
	"github.com/tiwariParth/go-task-manager/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.DataFile, "file", cfg.DataFile, "path of the task data file")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend: file, sqlite or memory")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable coloured output")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Initialize CLI
	c := cli.NewCLI(app.NewTodoApp(openGateway(cfg, log), log), os.Stdin, os.Stdout)
	if cfg.NoColor {
		color.NoColor = true
		c.SetPlain(true)
	}

	// Run CLI with command-line arguments
	if err := c.Run(flag.Args()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func openGateway(cfg *config.Config, log logrus.FieldLogger) storage.Gateway {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.NewSQLiteStore(cfg.DataFile, log)
	case config.BackendMemory:
		return memory.NewMemoryStore(log)
	default:
		return file.NewFileStore(cfg.DataFile, log)
	}
}
