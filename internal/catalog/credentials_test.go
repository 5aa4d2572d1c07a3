package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/gameshelf/internal/shared"
)

// newTokenServer serves a client-credentials token endpoint and counts hits.
func newTokenServer(t *testing.T, status int) (*httptest.Server, *int) {
	t.Helper()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"exchanged_%d","token_type":"bearer","expires_in":3600}`, hits)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func TestCredentials(t *testing.T) {
	ctx := context.Background()
	logger := shared.NewLogger(io.Discard)

	t.Run("Static Token Needs No Network", func(t *testing.T) {
		creds := NewCredentials(shared.CatalogCredentials{AccessToken: "static_token"}, "http://unreachable.invalid/token", logger)

		token, err := creds.Token(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token != "static_token" {
			t.Errorf("expected static_token, got %s", token)
		}
	})

	t.Run("Exchange Cached Process Wide", func(t *testing.T) {
		srv, hits := newTokenServer(t, http.StatusOK)
		creds := NewCredentials(shared.CatalogCredentials{ClientID: "cid", ClientSecret: "secret"}, srv.URL, logger)

		first, err := creds.Token(ctx)
		if err != nil {
			t.Fatalf("first exchange failed: %v", err)
		}

		second, err := creds.Token(ctx)
		if err != nil {
			t.Fatalf("second obtain failed: %v", err)
		}

		if first != second {
			t.Errorf("expected cached token, got %s then %s", first, second)
		}
		if *hits != 1 {
			t.Errorf("expected exactly one exchange, got %d", *hits)
		}
	})

	t.Run("Invalidate Forces Re-Exchange", func(t *testing.T) {
		srv, hits := newTokenServer(t, http.StatusOK)
		creds := NewCredentials(shared.CatalogCredentials{ClientID: "cid", ClientSecret: "secret"}, srv.URL, logger)

		first, _ := creds.Token(ctx)
		creds.Invalidate()
		second, err := creds.Token(ctx)
		if err != nil {
			t.Fatalf("re-exchange failed: %v", err)
		}

		if first == second {
			t.Errorf("expected a fresh token after invalidation, got %s twice", first)
		}
		if *hits != 2 {
			t.Errorf("expected two exchanges, got %d", *hits)
		}
	})

	t.Run("No Material", func(t *testing.T) {
		creds := NewCredentials(shared.CatalogCredentials{}, "http://unreachable.invalid/token", logger)

		if creds.Configured() {
			t.Error("expected Configured to be false")
		}

		_, err := creds.Token(ctx)
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("Exchange Failure Returns Error", func(t *testing.T) {
		srv, _ := newTokenServer(t, http.StatusInternalServerError)
		creds := NewCredentials(shared.CatalogCredentials{ClientID: "cid", ClientSecret: "secret"}, srv.URL, logger)

		_, err := creds.Token(ctx)
		if !errors.Is(err, shared.ErrTokenExchange) {
			t.Errorf("expected ErrTokenExchange, got %v", err)
		}
	})

	t.Run("Static Token Invalidated Then Exchanged", func(t *testing.T) {
		srv, hits := newTokenServer(t, http.StatusOK)
		creds := NewCredentials(shared.CatalogCredentials{
			ClientID:     "cid",
			ClientSecret: "secret",
			AccessToken:  "static_token",
		}, srv.URL, logger)

		first, _ := creds.Token(ctx)
		if first != "static_token" || *hits != 0 {
			t.Fatalf("expected static token without exchange, got %s (%d hits)", first, *hits)
		}

		creds.Invalidate()
		second, err := creds.Token(ctx)
		if err != nil {
			t.Fatalf("exchange after invalidation failed: %v", err)
		}
		if second == "static_token" {
			t.Error("expected an exchanged token after invalidating the static one")
		}
	})
}
