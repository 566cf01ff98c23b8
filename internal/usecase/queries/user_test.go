//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/infra"
	"laundry-backoffice/internal/usecase/queries"
	"laundry-backoffice/internal/usecase/shared"
	queriesmock "laundry-backoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(m *queriesmock.MockUserReadStore)
		wantErr error
	}{
		{
			name: "正常系",
			setup: func(m *queriesmock.MockUserReadStore) {
				m.EXPECT().FindByID(gomock.Any(), id).Return(&queries.UserView{ID: id, Name: "Ana", Role: user.RoleEmployee}, nil)
			},
		},
		{
			name: "存在しない",
			setup: func(m *queriesmock.MockUserReadStore) {
				m.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("find user", errors.New("no rows"), infra.KindNotFound))
			},
			wantErr: queries.ErrUserNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			tc.setup(store)

			got, err := queries.NewUserQueries(store).GetByID(ctx, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana", got.Name)
		})
	}

	t.Run("その他のエラーはそのまま返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		boom := errors.New("connection reset")
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, boom)

		_, err := queries.NewUserQueries(store).GetByID(ctx, id)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, queries.ErrUserNotFound)
	})
}

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	actor := shared.Actor{ID: uuid.New(), Role: user.RoleDirector}
	store.EXPECT().FindByID(gomock.Any(), actor.ID).Return(&queries.UserView{ID: actor.ID, Role: user.RoleDirector}, nil)

	got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, got.ID)
}

func TestUserQueries_List(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	all := []*queries.UserView{
		{ID: uuid.New(), Role: user.RoleAdmin, CreatedAt: created},
		{ID: uuid.New(), Role: user.RoleEmployee, CreatedAt: created},
	}

	t.Run("フィルタなしはnilを渡す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Nil()).Return(all, nil)

		got, err := queries.NewUserQueries(store).List(ctx, shared.Actor{Role: user.RoleEmployee}, nil)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("ロールフィルタを渡す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		role := user.RoleEmployee
		store.EXPECT().List(gomock.Any(), &role).Return(all[1:], nil)

		got, err := queries.NewUserQueries(store).List(ctx, shared.Actor{Role: user.RoleAdmin}, &role)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, user.RoleEmployee, got[0].Role)
	})

	t.Run("不正なロールの呼び出し元はForbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)

		_, err := queries.NewUserQueries(store).List(ctx, shared.Actor{Role: user.Role(9)}, nil)
		assert.ErrorIs(t, err, queries.ErrForbidden)
	})
}
