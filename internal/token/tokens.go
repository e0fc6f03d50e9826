// Package token per-RPC caller credentials
package token

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// AuthorizationKey metadata key carrying the token.
// The keys within metadata.MD are normalized to lowercase.
const AuthorizationKey = "authorization"

// Tokens credentials.PerRPCCredentials backed by an oauth2.TokenSource.
// The token identifies the caller, the server only logs it.
type Tokens struct {
	src oauth2.TokenSource
}

// NewTokens caches src, a new token is fetched only when the cached one expires
func NewTokens(src oauth2.TokenSource) *Tokens {
	return &Tokens{src: oauth2.ReuseTokenSource(nil, src)}
}

// NewStaticTokens the same caller token on every call
func NewStaticTokens(caller string) *Tokens {
	return NewTokens(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: caller}))
}

func (t *Tokens) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	tok, err := t.src.Token()
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return map[string]string{AuthorizationKey: tok.Type() + " " + tok.AccessToken}, nil
}

// RequireTransportSecurity the registry runs on plaintext connections
func (t *Tokens) RequireTransportSecurity() bool {
	return false
}
