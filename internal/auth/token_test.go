package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	p := Principal{UserID: 7, Email: "dev@example.com", Role: RoleAdmin}

	token, err := IssueToken(testSecret, p, time.Hour, time.Now())
	require.NoError(t, err)

	got, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseToken_StringSubjectAndDefaultRole(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "12",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	got, err := ParseToken(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, uint(12), got.UserID)
	assert.Equal(t, RoleUser, got.Role)
}

func TestParseToken_Rejects(t *testing.T) {
	valid := Principal{UserID: 1, Email: "a@example.com", Role: RoleUser}

	expired, err := IssueToken(testSecret, valid, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	wrongSecret, err := IssueToken("other", valid, time.Hour, time.Now())
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1, "email": "a@example.com", "role": "ROOT",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@example.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"expired", expired},
		{"wrong secret", wrongSecret},
		{"unknown role", badRole},
		{"missing subject", noSubject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(testSecret, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	assert.Zero(t, ActorID(ctx))

	ctx = WithPrincipal(ctx, Principal{UserID: 5, Email: "x@example.com", Role: RoleUser})
	p, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(5), p.UserID)
	assert.Equal(t, uint(5), ActorID(ctx))
}
