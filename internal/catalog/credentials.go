package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gameshelf/internal/shared"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials owns the process-wide bearer token slot for the catalog provider.
//
// A token supplied through configuration seeds the slot directly; otherwise the
// first [Credentials.Token] call performs a client-credentials exchange and
// caches the result. At most one token is cached at a time.
type Credentials struct {
	conf   *clientcredentials.Config
	logger *log.Logger

	mu     sync.Mutex
	cached string
}

// NewCredentials creates a Credentials cache from the configured credential material.
//
// authURL is the identity provider's token endpoint.
func NewCredentials(creds shared.CatalogCredentials, authURL string, logger *log.Logger) *Credentials {
	c := &Credentials{cached: creds.AccessToken, logger: logger}

	if creds.ClientID != "" && creds.ClientSecret != "" {
		c.conf = &clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     authURL,
		}
	}

	return c
}

// Configured reports whether any credential material is available, without
// performing a network call.
func (c *Credentials) Configured() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached != "" || c.conf != nil
}

// Token returns the cached bearer token, exchanging client credentials for a
// fresh one when the slot is empty.
//
// Returns [shared.ErrMissingCredentials] when no token exists and no exchange
// is possible, and an [shared.ErrTokenExchange] wrapped error when the
// exchange itself fails. Never panics.
func (c *Credentials) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != "" {
		return c.cached, nil
	}

	if c.conf == nil {
		return "", shared.ErrMissingCredentials
	}

	tok, err := c.conf.Token(ctx)
	if err != nil {
		c.logger.Warn("failed to obtain catalog token", "err", err)
		return "", fmt.Errorf("%w: %v", shared.ErrTokenExchange, err)
	}

	c.cached = tok.AccessToken
	return c.cached, nil
}

// Invalidate drops the cached token so the next [Credentials.Token] call
// re-exchanges. Callers use this exactly once per rejected provider call.
func (c *Credentials) Invalidate() {
	c.mu.Lock()
	c.cached = ""
	c.mu.Unlock()
}
