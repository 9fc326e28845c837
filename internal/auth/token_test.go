package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarstream/internal/apperror"
)

const testSecret = "test-secret"

func TestTokenService_IssueAndVerify(t *testing.T) {
	s := NewTokenService(testSecret, time.Hour)

	token, err := s.Issue("ada@example.com")
	require.NoError(t, err)

	claims, err := s.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_Issue_Errors(t *testing.T) {
	_, err := NewTokenService("", time.Hour).Issue("ada@example.com")
	assert.True(t, apperror.Is(err, apperror.KindMisconfigured))
	assert.EqualError(t, err, MsgSecretMissing)

	_, err = NewTokenService(testSecret, time.Hour).Issue("  ")
	assert.True(t, apperror.Is(err, apperror.KindBadRequest))
	assert.EqualError(t, err, "Email is required")
}

func TestTokenService_Verify_Failures(t *testing.T) {
	s := NewTokenService(testSecret, time.Hour)
	valid, err := s.Issue("ada@example.com")
	require.NoError(t, err)

	expired := NewTokenService(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue("ada@example.com")
	require.NoError(t, err)

	otherKey, err := NewTokenService("another-secret", time.Hour).Issue("ada@example.com")
	require.NoError(t, err)

	notYet, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "ada@example.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *TokenService
		header  string
		kind    apperror.Kind
		message string
	}{
		{"missing header", s, "", apperror.KindUnauthorized, MsgNoToken},
		{"scheme only", s, "Bearer", apperror.KindUnauthorized, MsgInvalidFormat},
		{"scheme and blank", s, "Bearer   ", apperror.KindUnauthorized, MsgInvalidFormat},
		{"no secret", NewTokenService("", time.Hour), "Bearer " + valid, apperror.KindMisconfigured, MsgSecretMissing},
		{"expired", s, "Bearer " + expiredToken, apperror.KindForbidden, MsgTokenExpired},
		{"wrong key", s, "Bearer " + otherKey, apperror.KindForbidden, MsgInvalidToken},
		{"garbage", s, "Bearer not.a.jwt", apperror.KindForbidden, MsgInvalidToken},
		{"alg none", s, "Bearer " + none, apperror.KindForbidden, MsgInvalidToken},
		{"not yet valid", s, "Bearer " + notYet, apperror.KindForbidden, MsgVerificationFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.Verify(tt.header)
			assert.Nil(t, claims)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
			assert.EqualError(t, err, tt.message)
		})
	}
}
