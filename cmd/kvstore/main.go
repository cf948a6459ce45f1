package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/Abhisheklearn12/kvstore/internal/cli"
	"github.com/Abhisheklearn12/kvstore/internal/store"
	"github.com/Abhisheklearn12/kvstore/pkg/config"
	"github.com/Abhisheklearn12/kvstore/pkg/kv"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "kvstore",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	mode, err := store.ParseLoadMode(cfg.LoadMode)
	if err != nil {
		return err
	}

	var backend kv.Store
	switch cfg.Backend {
	case config.BackendBolt:
		boltStore, err := store.OpenBoltStore(cfg.BoltPath, logger, mode)
		if err != nil {
			return err
		}
		defer boltStore.Close()
		backend = boltStore
	default:
		backend = store.NewMemStore(logger, mode)
	}

	repl, err := cli.NewREPL(
		store.NewInstrumentedStore(backend),
		os.Stdin, os.Stdout,
		cfg.Prompt, cfg.SnapshotPath,
		logger,
	)
	if err != nil {
		return err
	}

	return repl.Run()
}
