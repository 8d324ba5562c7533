package application

import (
	"fmt"
	"os"

	entryapp "github.com/khanhnv2901/crowdrisk/internal/application/entry"
	"github.com/khanhnv2901/crowdrisk/internal/domain/entry"
	"github.com/khanhnv2901/crowdrisk/internal/infrastructure/persistence/sqlite"
)

// Container holds all application services and repositories
// This is a simple dependency injection container
type Container struct {
	// Repositories
	EntryRepo entry.Repository

	// Services
	EntryService *entryapp.Service

	closeFn func() error
}

// NewContainer opens the entry store at dbPath and wires the services.
// Relative export paths resolve against the working directory.
func NewContainer(dbPath string) (*Container, error) {
	entryRepo, err := sqlite.NewEntryRepository(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry repository: %w", err)
	}

	exportDir, err := os.Getwd()
	if err != nil {
		_ = entryRepo.Close()
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return &Container{
		EntryRepo:    entryRepo,
		EntryService: entryapp.NewService(entryRepo, exportDir),
		closeFn:      entryRepo.Close,
	}, nil
}

// Close releases the underlying store
func (c *Container) Close() error {
	if c == nil || c.closeFn == nil {
		return nil
	}
	return c.closeFn()
}
