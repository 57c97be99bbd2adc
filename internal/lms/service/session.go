package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/futurexhq/futurex/internal/lms/store"
	"github.com/futurexhq/futurex/pkg/slogx"
)

var (
	// ErrNotAuthenticated reports a profile operation without a signed-in
	// account.
	ErrNotAuthenticated = errors.New("session: not authenticated")

	// ErrUpdateFailed reports a profile change that applied in memory but
	// could not be persisted. The caller must surface this: the change may
	// not survive a restart.
	ErrUpdateFailed = errors.New("session: profile update not persisted")
)

// SessionService is the single source of truth for who is currently signed
// in. At most one identity is active per client, and every state change is
// mirrored to durable storage so the next run can restore it.
type SessionService struct {
	Store     store.Store
	Directory *DirectoryService

	current *domain.Account
}

// Restore loads the persisted session, if any. Called once at startup; a
// value that fails to decode is treated the same as no session at all.
func (s *SessionService) Restore(ctx context.Context) {
	var acc domain.Account
	if err := s.Store.Load(ctx, store.KeySession, &acc); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Warn("session restore failed", slog.Any("error", err))
		}
		return
	}
	s.current = &acc
}

// Login authenticates against the directory using (email, role) as the
// lookup key. A wrong role reads exactly like a wrong password on purpose;
// callers get a bare boolean either way.
func (s *SessionService) Login(ctx context.Context, email, password string, role domain.Role) bool {
	acc, err := s.Directory.FindByEmailAndRole(email, role)
	if err != nil {
		return false
	}

	// Plain string comparison, matching the stored record format.
	if acc.Password != password {
		return false
	}

	s.current = &acc
	if err := s.Store.Save(ctx, store.KeySession, acc); err != nil {
		slogx.FromContext(ctx).Error("failed to persist session after login", slog.Any("error", err))
	}
	return true
}

// Register creates a new account and signs it in. Self-registration always
// produces a Student no matter which role was asked for.
func (s *SessionService) Register(ctx context.Context, name, email, password string, _ domain.Role) domain.Account {
	acc := s.Directory.Insert(ctx, domain.Account{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      domain.RoleStudent,
		AvatarURL: avatarFor(name),
		Bio:       "New student at FutureX.",
	})

	s.current = &acc
	if err := s.Store.Save(ctx, store.KeySession, acc); err != nil {
		slogx.FromContext(ctx).Error("failed to persist session after registration", slog.Any("error", err))
	}
	return acc
}

// CreateTrainer adds a trainer account to the directory. Administrative
// action; the caller's own session is left untouched.
func (s *SessionService) CreateTrainer(ctx context.Context, name, email, password string) domain.Account {
	return s.Directory.Insert(ctx, domain.Account{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      domain.RoleTrainer,
		AvatarURL: avatarFor(name),
		Bio:       "Expert Trainer at FutureX.",
	})
}

// Logout clears the session and removes it from storage.
func (s *SessionService) Logout(ctx context.Context) {
	s.current = nil
	if err := s.Store.Remove(ctx, store.KeySession); err != nil {
		slogx.FromContext(ctx).Error("failed to remove persisted session", slog.Any("error", err))
	}
}

// UpdateProfile merges the patch into the signed-in account. The merged
// account replaces the in-memory session first; if persisting it fails the
// directory is left alone and ErrUpdateFailed goes back to the caller.
func (s *SessionService) UpdateProfile(ctx context.Context, patch domain.AccountPatch) error {
	if s.current == nil {
		return ErrNotAuthenticated
	}

	merged := s.current.Merge(patch)
	s.current = &merged

	if err := s.Store.Save(ctx, store.KeySession, merged); err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}

	if _, err := s.Directory.Update(ctx, merged.ID, patch); err != nil {
		slogx.FromContext(ctx).Warn("profile change not propagated to directory",
			slog.String("account_id", merged.ID),
			slog.Any("error", err),
		)
	}
	return nil
}

// Current returns the signed-in account, if any.
func (s *SessionService) Current() (domain.Account, bool) {
	if s.current == nil {
		return domain.Account{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether an account is signed in.
func (s *SessionService) IsAuthenticated() bool { return s.current != nil }

func avatarFor(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
