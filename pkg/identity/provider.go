package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// JWKSProvider pulls the provider's published JWKS document into a KeySet
// and keeps it fresh on an interval.
type JWKSProvider struct {
	url     string
	keys    *KeySet
	client  *http.Client
	refresh time.Duration
}

// NewJWKSProvider builds a provider that fetches from the given JWKS URL
// into keys. A refresh interval of zero disables background refresh.
func NewJWKSProvider(url string, keys *KeySet, refresh time.Duration) *JWKSProvider {
	return &JWKSProvider{
		url:     url,
		keys:    keys,
		client:  &http.Client{Timeout: 10 * time.Second},
		refresh: refresh,
	}
}

// Fetch retrieves the JWKS document once and replaces the KeySet contents.
func (p *JWKSProvider) Fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("identity: failed to create JWKS request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity: failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity: JWKS endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("identity: failed to read JWKS response: %w", err)
	}

	var jwks JWKS
	if err := json.Unmarshal(body, &jwks); err != nil {
		return fmt.Errorf("identity: failed to decode JWKS: %w", err)
	}

	return p.keys.ResetFromJWKS(jwks)
}

// Run fetches immediately and then refreshes on the configured interval
// until ctx is cancelled. A failed refresh keeps the previous keys; tokens
// signed with a rotated-in key fail verification until the next attempt.
func (p *JWKSProvider) Run(ctx context.Context) error {
	if err := p.Fetch(ctx); err != nil {
		return err
	}
	if p.refresh <= 0 {
		return nil
	}

	ticker := time.NewTicker(p.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = p.Fetch(ctx) // keep serving with the old keys on failure
		}
	}
}
