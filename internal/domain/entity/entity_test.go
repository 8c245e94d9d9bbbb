package entity

import (
	"testing"
	"time"

	"carvalue/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCredential(t *testing.T) {
	cred, err := ParseCredential("0a0b.ff00")
	require.NoError(t, err)
	assert.Equal(t, Credential{Salt: []byte{0x0a, 0x0b}, Hash: []byte{0xff, 0x00}}, cred)
	assert.Equal(t, "0a0b.ff00", cred.String())

	for _, stored := range []string{"", "abc", "a.b.c", ".ff", "ff.", "zz.ff", "ff.zz"} {
		t.Run(stored, func(t *testing.T) {
			_, err := ParseCredential(stored)
			assert.True(t, errors.Is(err, ErrMalformedCredential))
		})
	}
}

func TestRoles(t *testing.T) {
	admin := User{Admin: true}
	assert.Equal(t, []string{"user", "admin"}, admin.Roles().Strings())
	assert.Equal(t, Roles{RoleUser}, (&User{}).Roles())

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, ParseRoles([]string{"user", "root", "admin", "user"}))
	assert.Empty(t, ParseRoles(nil))
}

func TestIdentity_CanManage(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	var anonymous *Identity
	assert.False(t, anonymous.CanManage(self))
	assert.False(t, anonymous.IsAdmin())

	user := &Identity{UserID: self, Roles: Roles{RoleUser}}
	assert.True(t, user.CanManage(self))
	assert.False(t, user.CanManage(other))

	admin := &Identity{UserID: uuid.New(), Roles: Roles{RoleUser, RoleAdmin}}
	assert.True(t, admin.CanManage(other))
}

func TestRefreshToken_IsExpired(t *testing.T) {
	token := &RefreshToken{ExpiresAt: mustTime(t, "2024-01-01T00:00:00Z")}

	assert.False(t, token.IsExpired(mustTime(t, "2023-12-31T23:59:59Z")))
	assert.True(t, token.IsExpired(token.ExpiresAt))
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return parsed
}
