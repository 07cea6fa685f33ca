package service

import "github.com/mmcdole/folio/internal/domain"

// SessionService manages the persisted local state as a whole
type SessionService struct {
	store domain.KVStore
}

// NewSessionService creates a new SessionService
func NewSessionService(store domain.KVStore) *SessionService {
	return &SessionService{store: store}
}

// Reset forgets the wishlist and the saved filter settings
func (s *SessionService) Reset() error {
	for _, key := range []string{domain.KeyWishlist, domain.KeySearchTerm, domain.KeyGenre} {
		if err := s.store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
