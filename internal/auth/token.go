// Package auth issues and verifies access tokens and checks user roles.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"scholarstream/internal/apperror"
)

const (
	MsgNoToken          = "Unauthorized: No token provided"
	MsgInvalidFormat    = "Unauthorized: Invalid token format"
	MsgSecretMissing    = "Server error: ACCESS_TOKEN_SECRET not configured"
	MsgTokenExpired     = "Forbidden: Token expired"
	MsgInvalidToken     = "Forbidden: Invalid token"
	MsgVerificationFail = "Forbidden: Token verification failed"
)

// Claims is the decoded identity carried by an access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HMAC access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. An empty secret is accepted here;
// Issue and Verify then fail as misconfigured.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Configured reports whether a signing secret is set.
func (s *TokenService) Configured() bool { return len(s.secret) > 0 }

// Issue signs an HS256 token for email.
func (s *TokenService) Issue(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperror.BadRequest("Email is required")
	}
	if !s.Configured() {
		return "", apperror.Misconfigured(MsgSecretMissing)
	}

	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return signed, nil
}

// Verify extracts the token from an Authorization header value and validates it.
// Every failure is an *apperror.Error whose message is safe to return to clients.
func (s *TokenService) Verify(header string) (*Claims, error) {
	if header == "" {
		return nil, apperror.Unauthorized(MsgNoToken)
	}
	raw := bearerToken(header)
	if raw == "" {
		return nil, apperror.Unauthorized(MsgInvalidFormat)
	}
	if !s.Configured() {
		return nil, apperror.Misconfigured(MsgSecretMissing)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classify(err)
	}
	return claims, nil
}

// bearerToken returns the credential following the scheme, e.g. "Bearer <token>".
func bearerToken(header string) string {
	_, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &apperror.Error{Kind: apperror.KindForbidden, Message: MsgTokenExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return &apperror.Error{Kind: apperror.KindForbidden, Message: MsgInvalidToken, Err: err}
	default:
		return &apperror.Error{Kind: apperror.KindForbidden, Message: MsgVerificationFail, Err: err}
	}
}
