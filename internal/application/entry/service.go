package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khanhnv2901/crowdrisk/internal/domain/entry"
	"github.com/khanhnv2901/crowdrisk/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
	"github.com/khanhnv2901/crowdrisk/internal/shared/security"
)

// Service provides application-level risk entry operations
type Service struct {
	repo      entry.Repository
	exportDir string
}

// NewService creates a new entry service. Relative export paths are resolved
// under exportDir.
func NewService(repo entry.Repository, exportDir string) *Service {
	return &Service{
		repo:      repo,
		exportDir: exportDir,
	}
}

// AddEntry validates, scores and stores a new entry
func (s *Service) AddEntry(ctx context.Context, params entry.Params) (*entry.Entry, error) {
	e, err := entry.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	stored, err := s.repo.Add(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return stored, nil
}

// GetEntry retrieves an entry by ID
func (s *Service) GetEntry(ctx context.Context, id int64) (*entry.Entry, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return e, nil
}

// ListEntries retrieves all entries
func (s *Service) ListEntries(ctx context.Context) ([]*entry.Entry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}

// EntriesByCrypto retrieves the entries reported for one cryptocurrency
func (s *Service) EntriesByCrypto(ctx context.Context, name string) ([]*entry.Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, sharedErrors.ErrEmptyCryptocurrency
	}

	entries, err := s.repo.FindByCryptocurrency(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for %s: %w", name, err)
	}

	return entries, nil
}

// Stats aggregates the entries reported for one cryptocurrency
func (s *Service) Stats(ctx context.Context, name string) (entry.Aggregate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entry.Aggregate{}, sharedErrors.ErrEmptyCryptocurrency
	}

	agg, err := s.repo.Aggregate(ctx, name)
	if err != nil {
		return entry.Aggregate{}, fmt.Errorf("failed to aggregate %s: %w", name, err)
	}

	return agg, nil
}

// DeleteEntry deletes an entry
func (s *Service) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil
}

// ExportJSON writes every entry to path as an indented JSON array and
// returns the written location and entry count.
func (s *Service) ExportJSON(ctx context.Context, path string) (string, int, error) {
	target, err := security.ResolveOutputPath(s.exportDir, path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve export path: %w", err)
	}

	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to list entries: %w", err)
	}

	views := make([]View, 0, len(entries))
	for _, e := range entries {
		views = append(views, ToView(e))
	}

	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", sharedErrors.ErrSerializationFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), constants.DefaultDirPerm); err != nil {
		return "", 0, fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(target, data, constants.DefaultFilePerm); err != nil {
		return "", 0, fmt.Errorf("failed to write export: %w", err)
	}

	return target, len(views), nil
}
