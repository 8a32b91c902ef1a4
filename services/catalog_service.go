package services

import (
	"errors"
	"fmt"
	"time"

	"tripx/catalog"
	"tripx/config"
	"tripx/db"
	"tripx/engine"
	"tripx/logger"
)

// ErrCatalogNotLoaded is returned by request paths before the first
// successful catalog load.
var ErrCatalogNotLoaded = errors.New("catalog not loaded")

var (
	store        = catalog.NewStore()
	preprocessor = engine.NewPreprocessor()
)

// sourceFromConfig picks the catalog source named by the config.
func sourceFromConfig(cfg *config.Config) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case "csv":
		return catalog.NewCSVSource(cfg.Catalog.CSVPath), nil
	case "mysql":
		if db.DB == nil {
			return nil, errors.New("mysql catalog source requires an initialized database connection")
		}
		return catalog.NewMySQLSource(db.DB, cfg.Catalog.Table), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// LoadCatalog runs the build phase of the catalog lifecycle: load raw
// rows, preprocess into a feature-complete snapshot, publish atomically.
// A load failure before the first snapshot is a startup failure; on
// refresh the previous snapshot stays in service.
func LoadCatalog(cfg *config.Config) error {
	source, err := sourceFromConfig(cfg)
	if err != nil {
		return err
	}

	raw, err := source.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	processed := preprocessor.PreprocessDestinations(raw)

	store.Swap(&catalog.Snapshot{
		Destinations: processed,
		Source:       source.Name(),
		LoadedAt:     time.Now(),
	})

	logger.Info("Catalog loaded", "source", source.Name(), "destinations", len(processed))
	return nil
}

// RefreshCatalog rebuilds the snapshot, logging instead of failing the
// process when the source is temporarily broken.
func RefreshCatalog(cfg *config.Config) {
	if err := LoadCatalog(cfg); err != nil {
		logger.Error("Catalog refresh failed, keeping current snapshot", "error", err)
		return
	}
	logger.Info("Catalog refreshed")
}

// CurrentSnapshot returns the served snapshot, or ErrCatalogNotLoaded
// before the first load.
func CurrentSnapshot() (*catalog.Snapshot, error) {
	snap := store.Current()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}
	return snap, nil
}

// Preprocessor exposes the shared preprocessor for profile construction.
func Preprocessor() *engine.Preprocessor {
	return preprocessor
}
