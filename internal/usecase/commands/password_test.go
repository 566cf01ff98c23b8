//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/domain/user"
	reqdto "laundry-backoffice/internal/handler/dto/request"
	"laundry-backoffice/internal/pkg/errs"
	"laundry-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkRecorder keeps every link handed to it.
type linkRecorder struct {
	mu    sync.Mutex
	links []commands.PasswordLink
	err   error
}

func (r *linkRecorder) Send(_ context.Context, link commands.PasswordLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.links = append(r.links, link)
	return nil
}

func (r *linkRecorder) last(t *testing.T) commands.PasswordLink {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.links)
	return r.links[len(r.links)-1]
}

func (r *linkRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.links)
}

func newPasswordCommands(f *fixture) (commands.PasswordCommands, *linkRecorder) {
	rec := &linkRecorder{}
	return commands.NewPasswordCommands(f.uow, f.hasher, rec, f.clock), rec
}

func TestRequestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("登録済みメールにはリセットリンクを送る", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		u := f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)

		require.NoError(t, cmds.RequestReset(ctx, reqdto.PasswordResetRequest{Email: " ana@example.com "}))

		link := rec.last(t)
		assert.Equal(t, u.ID(), link.UserID)
		assert.Equal(t, "ana@example.com", link.Email)
		assert.Equal(t, credential.PurposeReset, link.Purpose)
		assert.Equal(t, f.clock.Now().Add(2*time.Hour), link.ExpiresAt)
		assert.NotEmpty(t, link.Token)

		tokens := f.store.PasswordTokens(u.ID())
		require.Len(t, tokens, 1)
		assert.Equal(t, credential.Digest(link.Token), tokens[0].Hash())
		assert.NotEqual(t, []byte(link.Token), tokens[0].Hash())
	})

	t.Run("未登録メールでも成功扱いで何も送らない", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)

		assert.NoError(t, cmds.RequestReset(ctx, reqdto.PasswordResetRequest{Email: "ghost@example.com"}))
		assert.Zero(t, rec.count())
	})

	t.Run("メール形式が不正ならValidation", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)

		err := cmds.RequestReset(ctx, reqdto.PasswordResetRequest{Email: "not-an-email"})
		assert.True(t, errs.Is(err, commands.ErrValidation), "got %v", err)
		assert.True(t, errs.Is(err, user.ErrInvalidEmail))
		assert.Zero(t, rec.count())
	})

	t.Run("送信失敗はエラーを返す", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		rec.err = errs.New("smtp down")
		f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)

		err := cmds.RequestReset(ctx, reqdto.PasswordResetRequest{Email: "ana@example.com"})
		assert.ErrorIs(t, err, rec.err)
	})
}

func TestInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("Adminは誰でも招待できる", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		admin := f.seedUser(t, "Root", "root@example.com", user.RoleAdmin)
		dir := f.seedUser(t, "Dir", "dir@example.com", user.RoleDirector)

		require.NoError(t, cmds.Invite(ctx, actorOf(admin), dir.ID()))

		link := rec.last(t)
		assert.Equal(t, dir.ID(), link.UserID)
		assert.Equal(t, "Dir", link.Name)
		assert.Equal(t, credential.PurposeInvite, link.Purpose)
		assert.Equal(t, f.clock.Now().Add(24*time.Hour), link.ExpiresAt)
	})

	t.Run("DirectorはEmployeeだけ招待できる", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		dir := f.seedUser(t, "Dir", "dir@example.com", user.RoleDirector)
		emp := f.seedUser(t, "Emp", "emp@example.com", user.RoleEmployee)
		other := f.seedUser(t, "Dir2", "dir2@example.com", user.RoleDirector)

		assert.NoError(t, cmds.Invite(ctx, actorOf(dir), emp.ID()))
		assert.True(t, errs.Is(cmds.Invite(ctx, actorOf(dir), other.ID()), commands.ErrForbidden))
		assert.Equal(t, 1, rec.count())
	})

	t.Run("Employeeは招待できない", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		emp := f.seedUser(t, "Emp", "emp@example.com", user.RoleEmployee)
		peer := f.seedUser(t, "Peer", "peer@example.com", user.RoleEmployee)

		assert.True(t, errs.Is(cmds.Invite(ctx, actorOf(emp), peer.ID()), commands.ErrForbidden))
		assert.Zero(t, rec.count())
	})

	t.Run("存在しないユーザーは権限より先に404", func(t *testing.T) {
		f := newFixture(t)
		cmds, _ := newPasswordCommands(f)
		emp := f.seedUser(t, "Emp", "emp@example.com", user.RoleEmployee)

		err := cmds.Invite(ctx, actorOf(emp), uuid.New())
		assert.True(t, errs.Is(err, commands.ErrUserNotFound), "got %v", err)
	})
}

func TestSetPassword(t *testing.T) {
	ctx := context.Background()

	issueReset := func(t *testing.T, cmds commands.PasswordCommands, rec *linkRecorder, email string) string {
		t.Helper()
		require.NoError(t, cmds.RequestReset(ctx, reqdto.PasswordResetRequest{Email: email}))
		return rec.last(t).Token
	}

	t.Run("リンクでパスワードを設定しメールを確認済みにする", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		auth := commands.NewAuthCommands(f.uow, f.hasher, f.jwt, f.clock)
		u := f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)
		token := issueReset(t, cmds, rec, "ana@example.com")

		f.clock.Add(30 * time.Minute)
		userID, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: token, Password: "brand-new"})
		require.NoError(t, err)
		assert.Equal(t, u.ID(), userID)

		snap, err := f.uow.CommandReads().UserByID(ctx, u.ID())
		require.NoError(t, err)
		assert.True(t, snap.EmailVerified)
		assert.Equal(t, f.clock.Now(), snap.UpdatedAt)

		_, err = auth.Login(ctx, reqdto.LoginRequest{Email: "ana@example.com", Password: "brand-new"})
		assert.NoError(t, err)
		_, err = auth.Login(ctx, reqdto.LoginRequest{Email: "ana@example.com", Password: "password123"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("同じリンクは二度使えない", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)
		token := issueReset(t, cmds, rec, "ana@example.com")

		_, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: token, Password: "first"})
		require.NoError(t, err)
		_, err = cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: token, Password: "second"})
		assert.True(t, errs.Is(err, commands.ErrInvalidPasswordToken), "got %v", err)
	})

	t.Run("設定後は同じユーザーの他のリンクも無効", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		u := f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)
		older := issueReset(t, cmds, rec, "ana@example.com")
		f.clock.Add(time.Minute)
		newer := issueReset(t, cmds, rec, "ana@example.com")

		_, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: newer, Password: "first"})
		require.NoError(t, err)

		_, err = cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: older, Password: "second"})
		assert.True(t, errs.Is(err, commands.ErrInvalidPasswordToken), "got %v", err)
		for _, tok := range f.store.PasswordTokens(u.ID()) {
			assert.NotNil(t, tok.UsedAt())
		}
	})

	t.Run("期限切れリンクは無効", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)
		token := issueReset(t, cmds, rec, "ana@example.com")

		f.clock.Add(2 * time.Hour)
		_, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: token, Password: "late"})
		assert.True(t, errs.Is(err, commands.ErrInvalidPasswordToken), "got %v", err)
	})

	t.Run("招待リンクは24時間有効", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		admin := f.seedUser(t, "Root", "root@example.com", user.RoleAdmin)
		emp := f.seedUser(t, "Emp", "emp@example.com", user.RoleEmployee)
		require.NoError(t, cmds.Invite(ctx, actorOf(admin), emp.ID()))
		token := rec.last(t).Token

		f.clock.Add(23 * time.Hour)
		userID, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: token, Password: "welcome"})
		require.NoError(t, err)
		assert.Equal(t, emp.ID(), userID)
	})

	t.Run("未知のトークンは無効", func(t *testing.T) {
		f := newFixture(t)
		cmds, _ := newPasswordCommands(f)

		_, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: "made-up", Password: "pw"})
		assert.True(t, errs.Is(err, commands.ErrInvalidPasswordToken), "got %v", err)
	})

	t.Run("入力エラーはトークンを消費しない", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)
		token := issueReset(t, cmds, rec, "ana@example.com")

		cases := map[string]reqdto.SetPasswordRequest{
			"トークンなし":     {Token: "  ", Password: "pw"},
			"パスワードなし":    {Token: token},
			"パスワードが長すぎる": {Token: token, Password: string(make([]byte, 100))},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := cmds.SetPassword(ctx, req)
				assert.True(t, errs.Is(err, commands.ErrValidation), "got %v", err)
			})
		}

		_, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: token, Password: "still-valid"})
		assert.NoError(t, err)
	})

	t.Run("同時に使っても成功するのは1回だけ", func(t *testing.T) {
		f := newFixture(t)
		cmds, rec := newPasswordCommands(f)
		f.seedUser(t, "Ana", "ana@example.com", user.RoleEmployee)
		token := issueReset(t, cmds, rec, "ana@example.com")

		const attempts = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			rejected  int
		)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cmds.SetPassword(ctx, reqdto.SetPasswordRequest{Token: token, Password: "race"})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errs.Is(err, commands.ErrInvalidPasswordToken):
					rejected++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, attempts-1, rejected)
	})
}
