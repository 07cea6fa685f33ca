package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mmcdole/folio/internal/domain"
)

// WishlistService keeps the set of wished book ids and mirrors every
// change to the key-value store before returning.
type WishlistService struct {
	store  domain.KVStore
	logger *slog.Logger
	ids    []int // insertion order, no duplicates
}

// NewWishlistService reads the persisted wishlist. A missing or corrupt
// value starts an empty wishlist.
func NewWishlistService(store domain.KVStore, logger *slog.Logger) *WishlistService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &WishlistService{store: store, logger: logger}
	s.ids = s.read()
	return s
}

func (s *WishlistService) read() []int {
	raw, ok := s.store.Get(domain.KeyWishlist)
	if !ok || raw == "" {
		return nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("ignoring corrupt wishlist", "error", err)
		return nil
	}

	// Stored data may predate the no-duplicates rule
	var unique []int
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	return unique
}

func (s *WishlistService) persist() error {
	ids := s.ids
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := s.store.Set(domain.KeyWishlist, string(data)); err != nil {
		s.logger.Error("failed to save wishlist", "error", err)
		return fmt.Errorf("saving wishlist: %w", err)
	}
	return nil
}

// IsMember reports whether id is wished
func (s *WishlistService) IsMember(id int) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns a copy of the wished ids in insertion order
func (s *WishlistService) IDs() []int {
	return slices.Clone(s.ids)
}

// Len returns the number of wished ids, orphans included
func (s *WishlistService) Len() int {
	return len(s.ids)
}

// Toggle adds id if absent, removes it if present, and returns the new membership
func (s *WishlistService) Toggle(id int) (bool, error) {
	if s.IsMember(id) {
		return false, s.Remove(id)
	}
	s.ids = append(s.ids, id)
	s.logger.Debug("wishlist add", "id", id)
	return true, s.persist()
}

// Remove drops id from the wishlist. Removing an absent id still persists.
func (s *WishlistService) Remove(id int) error {
	s.ids = slices.DeleteFunc(s.ids, func(v int) bool { return v == id })
	s.logger.Debug("wishlist remove", "id", id)
	return s.persist()
}
