package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/futurexhq/futurex/internal/lms/store"
	"github.com/futurexhq/futurex/pkg/idx"
	"github.com/futurexhq/futurex/pkg/slogx"
)

// DirectoryService owns the authoritative list of known accounts for the
// life of the client run. The list lives in memory and the whole of it is
// written back after every mutation; a failed write leaves memory ahead of
// storage until the next successful persist.
type DirectoryService struct {
	Store store.Store

	accounts []domain.Account
}

// Initialize loads the persisted directory, or seeds it with the fixture
// accounts on first run. One-time bootstrap, never resynchronized.
func (s *DirectoryService) Initialize(ctx context.Context) error {
	var accounts []domain.Account
	err := s.Store.Load(ctx, store.KeyDirectory, &accounts)
	switch {
	case err == nil:
		s.accounts = accounts
		return nil
	case errors.Is(err, store.ErrNotFound):
		s.accounts = append([]domain.Account(nil), seedAccounts...)
		if err := s.Store.Save(ctx, store.KeyDirectory, s.accounts); err != nil {
			slogx.FromContext(ctx).Error("failed to persist seeded directory", slog.Any("error", err))
		}
		return nil
	default:
		return err
	}
}

// FindByEmailAndRole looks an account up by its login key. The role is part
// of the key, not a property checked afterwards: an account that exists
// under another role is simply not found.
func (s *DirectoryService) FindByEmailAndRole(email string, role domain.Role) (domain.Account, error) {
	for _, a := range s.accounts {
		if a.Email == email && a.Role == role {
			return a, nil
		}
	}
	return domain.Account{}, store.ErrNotFound
}

// FindByID returns the account with the given id.
func (s *DirectoryService) FindByID(id string) (domain.Account, error) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Account{}, store.ErrNotFound
}

// Insert appends a new account, minting a fresh time-ordered id when the
// record has none, and persists the directory.
func (s *DirectoryService) Insert(ctx context.Context, acc domain.Account) domain.Account {
	if acc.ID == "" {
		acc.ID = idx.New()
	}
	s.accounts = append(s.accounts, acc)
	s.persist(ctx)
	return acc
}

// Update merges the patch into the account with the given id and persists
// the directory.
func (s *DirectoryService) Update(ctx context.Context, id string, patch domain.AccountPatch) (domain.Account, error) {
	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts[i] = a.Merge(patch)
			s.persist(ctx)
			return s.accounts[i], nil
		}
	}
	return domain.Account{}, store.ErrNotFound
}

// All returns a snapshot of every account in insertion order.
func (s *DirectoryService) All() []domain.Account {
	return append([]domain.Account(nil), s.accounts...)
}

// persist writes the whole list back. Failures do not roll the in-memory
// mutation back; they are logged for operators and the next successful
// write catches storage up.
func (s *DirectoryService) persist(ctx context.Context) {
	if err := s.Store.Save(ctx, store.KeyDirectory, s.accounts); err != nil {
		slogx.FromContext(ctx).Error("directory persist failed, in-memory list is ahead of storage",
			slog.Any("error", err),
		)
	}
}
