package service

import (
	"context"
	"testing"

	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/futurexhq/futurex/internal/lms/store"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*SessionService, store.Store) {
	t.Helper()

	dir, db := newTestDirectory(t)
	return &SessionService{Store: db, Directory: dir}, db
}

func TestLoginWithSeededAccount(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t)
	ctx := context.Background()

	require.True(t, sess.Login(ctx, "alex@student.futurex.com", "password", domain.RoleStudent))

	acc, ok := sess.Current()
	require.True(t, ok)
	require.Equal(t, "s1", acc.ID)
	require.True(t, sess.IsAuthenticated())
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t)
	ctx := context.Background()

	require.True(t, sess.Login(ctx, "alex@student.futurex.com", "password", domain.RoleStudent))

	t.Run("wrong password", func(t *testing.T) {
		require.False(t, sess.Login(ctx, "alex@student.futurex.com", "wrong", domain.RoleStudent))

		acc, ok := sess.Current()
		require.True(t, ok)
		require.Equal(t, "s1", acc.ID) // still the earlier identity
	})

	t.Run("right password wrong role reads as not found", func(t *testing.T) {
		require.False(t, sess.Login(ctx, "alex@student.futurex.com", "password", domain.RoleTrainer))

		acc, ok := sess.Current()
		require.True(t, ok)
		require.Equal(t, "s1", acc.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		require.False(t, sess.Login(ctx, "nobody@futurex.com", "password", domain.RoleStudent))
	})
}

func TestLoginPersistsSessionForRestore(t *testing.T) {
	t.Parallel()

	sess, db := newTestSession(t)
	ctx := context.Background()

	require.True(t, sess.Login(ctx, "sarah@trainer.futurex.com", "password", domain.RoleTrainer))

	// A fresh manager over the same storage restores the same identity,
	// which is exactly what happens on the next client run.
	dir := &DirectoryService{Store: db}
	require.NoError(t, dir.Initialize(ctx))
	restored := &SessionService{Store: db, Directory: dir}
	restored.Restore(ctx)

	acc, ok := restored.Current()
	require.True(t, ok)
	require.Equal(t, "t1", acc.ID)
}

func TestRestoreWithoutPersistedSession(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t)
	sess.Restore(context.Background())

	require.False(t, sess.IsAuthenticated())
}

func TestRegisterAlwaysCreatesStudent(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t)
	ctx := context.Background()

	// Asking for admin makes no difference.
	acc := sess.Register(ctx, "Nina", "nina@x.com", "secret123", domain.RoleAdmin)

	require.Equal(t, domain.RoleStudent, acc.Role)
	require.NotEmpty(t, acc.ID)
	require.Equal(t, "New student at FutureX.", acc.Bio)
	require.Contains(t, acc.AvatarURL, "ui-avatars.com")

	// Auto-login.
	current, ok := sess.Current()
	require.True(t, ok)
	require.Equal(t, acc.ID, current.ID)

	// And the directory grew by one.
	require.Len(t, sess.Directory.All(), 5)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	t.Parallel()

	sess, db := newTestSession(t)
	ctx := context.Background()

	require.True(t, sess.Login(ctx, "admin@futurex.com", "password", domain.RoleAdmin))
	sess.Logout(ctx)

	require.False(t, sess.IsAuthenticated())

	// A fresh manager restores to anonymous.
	restored := &SessionService{Store: db, Directory: sess.Directory}
	restored.Restore(ctx)
	require.False(t, restored.IsAuthenticated())
}

func TestCreateTrainerLeavesCallerSessionAlone(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t)
	ctx := context.Background()

	require.True(t, sess.Login(ctx, "admin@futurex.com", "password", domain.RoleAdmin))
	before := len(sess.Directory.All())

	trainer := sess.CreateTrainer(ctx, "Jane", "jane@x.com", "pw1234")

	require.Equal(t, domain.RoleTrainer, trainer.Role)
	require.Len(t, sess.Directory.All(), before+1)

	acc, ok := sess.Current()
	require.True(t, ok)
	require.Equal(t, "a1", acc.ID) // admin stays signed in as themselves
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	sess, db := newTestSession(t)
	ctx := context.Background()

	require.True(t, sess.Login(ctx, "alex@student.futurex.com", "password", domain.RoleStudent))

	name := "X"
	require.NoError(t, sess.UpdateProfile(ctx, domain.AccountPatch{Name: &name}))

	// Exactly one account carries the new name, same id as before.
	var matches []domain.Account
	for _, a := range sess.Directory.All() {
		if a.Name == "X" {
			matches = append(matches, a)
		}
	}
	require.Len(t, matches, 1)
	require.Equal(t, "s1", matches[0].ID)
	require.Len(t, sess.Directory.All(), 4)

	// The persisted session carries the change too.
	var persisted domain.Account
	require.NoError(t, db.Load(ctx, store.KeySession, &persisted))
	require.Equal(t, "X", persisted.Name)
}

func TestUpdateProfileRequiresAuthentication(t *testing.T) {
	t.Parallel()

	sess, _ := newTestSession(t)

	name := "X"
	err := sess.UpdateProfile(context.Background(), domain.AccountPatch{Name: &name})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateProfileReportsPersistFailure(t *testing.T) {
	t.Parallel()

	sess, db := newTestSession(t)
	ctx := context.Background()

	require.True(t, sess.Login(ctx, "alex@student.futurex.com", "password", domain.RoleStudent))

	// Closing the storage makes the next save fail.
	require.NoError(t, db.Close())

	name := "X"
	err := sess.UpdateProfile(ctx, domain.AccountPatch{Name: &name})
	require.ErrorIs(t, err, ErrUpdateFailed)

	// In-memory state applied anyway; durability is what failed.
	acc, ok := sess.Current()
	require.True(t, ok)
	require.Equal(t, "X", acc.Name)
}
