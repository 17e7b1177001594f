package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

func newUsersService(users *fakeUsers, tags *fakeTags) *Users {
	return &Users{
		Log:   log.New(io.Discard, "", 0),
		Users: users,
		Tags:  tags,
	}
}

func TestUserDeleteAdminOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		p        domain.Principal
		anon     bool
		wantKind domain.ErrorKind // "" = успех
	}{
		{"admin can delete", domain.Principal{Username: "carol", Role: domain.RoleAdmin}, false, ""},
		{"user denied", domain.Principal{Username: "dave", Role: domain.RoleUser}, false, domain.KindAccessDenied},
		{"anonymous denied", domain.Principal{}, true, domain.KindUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUsers(domain.User{
				Username: "bob", Email: "bob@example.com", Role: domain.RoleUser,
			})
			u, err := users.UserByUsername(context.Background(), "bob")
			require.NoError(t, err)
			s := newUsersService(users, newFakeTags())

			ctx := context.Background()
			if !tt.anon {
				ctx = ctxWith(tt.p)
			}
			err = s.Delete(ctx, u.ID)
			if tt.wantKind == "" {
				require.NoError(t, err)
				_, err = users.UserByUsername(context.Background(), "bob")
				assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
			// пользователь на месте
			_, err = users.UserByUsername(context.Background(), "bob")
			assert.NoError(t, err)
		})
	}
}

func TestUserSetBannedAdminOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		p        domain.Principal
		anon     bool
		wantKind domain.ErrorKind // "" = успех
	}{
		{"admin can ban", domain.Principal{Username: "carol", Role: domain.RoleAdmin}, false, ""},
		{"user denied", domain.Principal{Username: "dave", Role: domain.RoleUser}, false, domain.KindAccessDenied},
		{"anonymous denied", domain.Principal{}, true, domain.KindUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUsers(domain.User{
				Username: "bob", Email: "bob@example.com", Role: domain.RoleUser,
			})
			u, err := users.UserByUsername(context.Background(), "bob")
			require.NoError(t, err)
			s := newUsersService(users, newFakeTags())

			ctx := context.Background()
			if !tt.anon {
				ctx = ctxWith(tt.p)
			}
			err = s.SetBanned(ctx, u.ID, true)
			got, lookupErr := users.UserByUsername(context.Background(), "bob")
			require.NoError(t, lookupErr)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.True(t, got.Banned)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
			assert.False(t, got.Banned)
		})
	}
}

func TestUserSetBannedUnknownUser(t *testing.T) {
	t.Parallel()

	s := newUsersService(newFakeUsers(), newFakeTags())
	ctx := ctxWith(domain.Principal{Username: "carol", Role: domain.RoleAdmin})

	err := s.SetBanned(ctx, domain.UserID(uuid.New()), true)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
