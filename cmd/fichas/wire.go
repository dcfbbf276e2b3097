package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ceplan/fichas/internal/adapters/driven/config/file"
	"github.com/ceplan/fichas/internal/adapters/driven/storage/memory"
	"github.com/ceplan/fichas/internal/adapters/driven/storage/sqlite"
	"github.com/ceplan/fichas/internal/adapters/driven/writer/dryrun"
	"github.com/ceplan/fichas/internal/adapters/driving/cli"
	"github.com/ceplan/fichas/internal/connectors/filesystem"
	"github.com/ceplan/fichas/internal/core/ports/driven"
	"github.com/ceplan/fichas/internal/core/services"
	"github.com/ceplan/fichas/internal/logger"
	"github.com/ceplan/fichas/internal/normalisers/ficha"
	"github.com/ceplan/fichas/internal/postprocessors"
	"github.com/ceplan/fichas/internal/postprocessors/audit"
)

// wire builds the services from the configuration directory. The
// publish plan of the dry-run writer goes to out.
func wire(opts cli.Options, out io.Writer) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Get()

	configDir := filepath.Dir(configStore.Path())
	catalogPath := settings.CatalogPath
	if catalogPath == "" {
		catalogPath = filepath.Join(configDir, "catalog.toml")
	}
	catalogStore, err := file.NewCatalogStore(catalogPath)
	if err != nil {
		return nil, err
	}
	catalog, err := catalogStore.Load()
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", catalogStore.Path(), err)
	}
	catalogService, err := services.NewCatalogService(catalog)
	if err != nil {
		return nil, fmt.Errorf("compiling catalog %s: %w", catalogStore.Path(), err)
	}

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := registry.BuildPipeline(postprocessors.DefaultNames, map[string]map[string]any{
		audit.Name: {"strict": settings.StrictAudit},
	})
	if err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}

	var closers []func() error
	var store driven.ResultStore
	if opts.NoStore {
		store = memory.NewResultStore()
	} else {
		dataDir := settings.DataDir
		if dataDir == "" {
			dataDir = filepath.Join(configDir, "data")
		}
		sqliteStore, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening result store: %w", err)
		}
		logger.Debug("result store: %s", sqliteStore.Path())
		store = sqliteStore
		closers = append(closers, sqliteStore.Close)
	}

	source := filesystem.New(settings.InputDir)
	closers = append(closers, source.Close)

	fichaService := services.NewFichaService(
		ficha.NewNormaliser(),
		store,
		pipeline,
		catalogService,
		dryrun.New(out),
		settings.Workers,
	)

	return &cli.Services{
		Ficha:    fichaService,
		Catalog:  catalogService,
		Settings: settingsService,
		Input:    source,
		Close: func() error {
			var errs []error
			for _, c := range closers {
				errs = append(errs, c())
			}
			return errors.Join(errs...)
		},
	}, nil
}
