package service

import (
	"log/slog"

	"github.com/mmcdole/folio/internal/domain"
)

// SettingsService persists the search term and genre selection
type SettingsService struct {
	store    domain.KVStore
	logger   *slog.Logger
	settings domain.FilterSettings
}

// NewSettingsService loads persisted settings, falling back to an empty
// search term and the "all" genre.
func NewSettingsService(store domain.KVStore, logger *slog.Logger) *SettingsService {
	if logger == nil {
		logger = slog.Default()
	}

	settings := domain.DefaultFilterSettings()
	if v, ok := store.Get(domain.KeySearchTerm); ok {
		settings.SearchTerm = v
	}
	if v, ok := store.Get(domain.KeyGenre); ok && v != "" {
		settings.Genre = v
	}

	return &SettingsService{store: store, logger: logger, settings: settings}
}

// Current returns the active settings
func (s *SettingsService) Current() domain.FilterSettings {
	return s.settings
}

// SetSearchTerm updates and persists the search term
func (s *SettingsService) SetSearchTerm(term string) error {
	s.settings.SearchTerm = term
	if err := s.store.Set(domain.KeySearchTerm, term); err != nil {
		s.logger.Error("failed to save search term", "error", err)
		return err
	}
	return nil
}

// SetGenre updates and persists the genre; empty means "all"
func (s *SettingsService) SetGenre(genre string) error {
	if genre == "" {
		genre = domain.GenreAll
	}
	s.settings.Genre = genre
	if err := s.store.Set(domain.KeyGenre, genre); err != nil {
		s.logger.Error("failed to save genre", "error", err)
		return err
	}
	return nil
}
