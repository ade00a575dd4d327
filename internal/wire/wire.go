// Package wire provides dependency injection for the catq application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/catq/internal/adapters/cli"
	"github.com/example/catq/internal/adapters/sqlite"
	"github.com/example/catq/internal/app"
	"github.com/example/catq/internal/config"
	"github.com/example/catq/internal/db"
	"github.com/example/catq/internal/ports/primary"
	"github.com/example/catq/internal/ports/secondary"
)

var (
	cfg             *config.Config
	catalog         *sqlite.Catalog
	sink            secondary.DiagnosticSink
	metadataService primary.MetadataService
	once            sync.Once
	verbose         bool
	pageSize        int
)

// SetVerbose enables debug diagnostics. Must be called before the first
// service access to take effect.
func SetVerbose(v bool) {
	verbose = v
}

// SetPageSize overrides the configured rows-per-round-trip for this
// invocation. Zero keeps the configured value. Must be called before the
// first service access to take effect.
func SetPageSize(n int) {
	pageSize = n
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Catalog returns the singleton catalog backend.
func Catalog() *sqlite.Catalog {
	once.Do(initServices)
	return catalog
}

// MetadataService returns the singleton MetadataService instance.
func MetadataService() primary.MetadataService {
	once.Do(initServices)
	return metadataService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if pageSize > 0 {
		cfg.PageSize = pageSize
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open catalog database: %v", err)
	}

	sink = cliadapter.NewStderrSink(verbose)
	catalog = sqlite.NewCatalog(database)
	metadataService = app.NewMetadataService(catalog, sink, cfg.PageSize, cfg.MaxConditions)
}

// MetadataAdapter returns a new MetadataAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func MetadataAdapter() *cliadapter.MetadataAdapter {
	return MetadataAdapterWithOutput(os.Stdout)
}

// MetadataAdapterWithOutput returns a new MetadataAdapter writing to the
// given output. This variant allows testing or alternate destinations.
func MetadataAdapterWithOutput(out io.Writer) *cliadapter.MetadataAdapter {
	once.Do(initServices)
	return cliadapter.NewMetadataAdapter(metadataService, out)
}
