package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// ParseToken verifies an HS256 bearer token and returns its principal.
// The subject may be encoded as a JSON number or a decimal string.
func ParseToken(secret, tokenString string) (Principal, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidClaims
	}

	userID, err := subjectID(claims["sub"])
	if err != nil {
		return Principal{}, err
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return Principal{}, fmt.Errorf("%w: missing email", ErrInvalidClaims)
	}

	role := RoleUser
	if r, ok := claims["role"].(string); ok && r != "" {
		role = Role(r)
	}
	if !role.Valid() {
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidClaims, role)
	}

	return Principal{UserID: userID, Email: email, Role: role}, nil
}

// IssueToken signs a token for p. Used by the token command for local
// development; production tokens come from the identity provider.
func IssueToken(secret string, p Principal, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   p.UserID,
		"email": p.Email,
		"role":  string(p.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func subjectID(sub interface{}) (uint, error) {
	var id uint64
	switch v := sub.(type) {
	case float64:
		if v < 1 || v != float64(uint64(v)) {
			return 0, fmt.Errorf("%w: bad subject", ErrInvalidClaims)
		}
		id = uint64(v)
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil || parsed == 0 {
			return 0, fmt.Errorf("%w: bad subject", ErrInvalidClaims)
		}
		id = parsed
	default:
		return 0, fmt.Errorf("%w: missing subject", ErrInvalidClaims)
	}
	return uint(id), nil
}
