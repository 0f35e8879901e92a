// Package auth extracts and verifies bearer tokens.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNoToken      = errors.New("no bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Principal is the caller identified by a verified bearer token.
type Principal struct {
	// Subject is the token subject; for opaque tokens it is the token itself.
	Subject string
	// Token is the raw bearer credential as presented.
	Token string
}

// Verifier turns a raw bearer token into a Principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// ExtractBearerToken returns the credential of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ExtractBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNoToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// OpaqueVerifier accepts any non-empty token without inspecting it.
type OpaqueVerifier struct{}

func (OpaqueVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	return &Principal{Subject: token, Token: token}, nil
}

// MockVerifier returns a fixed principal or error, for tests.
type MockVerifier struct {
	Principal *Principal
	Error     error
}

func (m *MockVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	p := *m.Principal
	p.Token = token
	return &p, nil
}

// TestPrincipal returns a principal for use in tests.
func TestPrincipal() *Principal {
	return &Principal{Subject: "test-subject"}
}

var (
	_ Verifier = OpaqueVerifier{}
	_ Verifier = (*MockVerifier)(nil)
	_ Verifier = (*JWTVerifier)(nil)
)
