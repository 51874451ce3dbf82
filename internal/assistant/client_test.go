package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/assistant"
	"github.com/goliatone/go-sitebuilder/internal/drafts"
	"github.com/goliatone/go-sitebuilder/internal/editor"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/storage"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
			Mode string `json:"mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" || req.Mode == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T, endpoint string) *assistant.Client {
	t.Helper()
	client, err := assistant.NewClient(endpoint, assistant.WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := assistant.NewClient("  "); err != assistant.ErrEndpointRequired {
		t.Fatalf("expected endpoint required, got %v", err)
	}
}

func TestPricingSuggestion(t *testing.T) {
	server := newServer(t, http.StatusOK, `{
		"ingredients": [{"name": "flour", "quantity": 500, "unit": "g", "cost": 0.8}],
		"total_cost": 0.8,
		"suggested_price": 4.5,
		"currency": "USD"
	}`)

	suggestion, err := newClient(t, server.URL).Pricing(context.Background(), "sourdough loaf")
	if err != nil {
		t.Fatalf("pricing: %v", err)
	}
	if len(suggestion.Ingredients) != 1 || suggestion.Ingredients[0].Name != "flour" {
		t.Fatalf("unexpected ingredients %+v", suggestion.Ingredients)
	}
	if suggestion.SuggestedPrice != 4.5 || suggestion.Currency != "USD" {
		t.Fatalf("unexpected suggestion %+v", suggestion)
	}
}

func TestNonSuccessStatusIsExternalError(t *testing.T) {
	server := newServer(t, http.StatusBadGateway, `{"error": "upstream"}`)

	_, err := newClient(t, server.URL).Content(context.Background(), "a conference about Go")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryExternal) {
		t.Fatalf("expected external category, got %v", err)
	}
}

func TestSchemaMismatchIsRejected(t *testing.T) {
	cases := map[string]string{
		"missing field": `{"tagline": "Go all day"}`,
		"wrong type":    `{"tagline": 7, "description": "x"}`,
		"not json":      `<html>oops</html>`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := newServer(t, http.StatusOK, body)
			_, err := newClient(t, server.URL).Content(context.Background(), "a conference about Go")
			if err == nil {
				t.Fatalf("expected schema error")
			}
			if !goerrors.IsCategory(err, goerrors.CategoryExternal) {
				t.Fatalf("expected external category, got %v", err)
			}
		})
	}
}

func TestEmptyTextIsValidationError(t *testing.T) {
	client := newClient(t, "http://127.0.0.1:1")
	_, err := client.Pricing(context.Background(), " ")
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestApplyContentSuggestionMarksSessionDirty(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"tagline": "Two days of Go", "description": "Talks and **workshops**."}`)
	suggestion, err := newClient(t, server.URL).Content(context.Background(), "a conference about Go")
	if err != nil {
		t.Fatalf("content: %v", err)
	}

	d, err := drafts.New(uuid.New(), uuid.Nil, drafts.KindEvent, "gophercon", modules.DefaultNavigation(drafts.KindEvent))
	if err != nil {
		t.Fatalf("new draft: %v", err)
	}
	session, err := editor.NewSession(storage.NewMemoryRepository(), d)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := assistant.ApplyContentSuggestion(session, *suggestion); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !session.Dirty() {
		t.Fatalf("expected session dirty after applying a suggestion")
	}
	got := session.Draft().Overview
	if got.Tagline != "Two days of Go" || got.Description != "Talks and **workshops**." {
		t.Fatalf("unexpected overview %+v", got)
	}
}

func TestFailedSuggestionLeavesSessionUntouched(t *testing.T) {
	server := newServer(t, http.StatusInternalServerError, `{}`)
	d, err := drafts.New(uuid.New(), uuid.Nil, drafts.KindShop, "corner-bakery", modules.DefaultNavigation(drafts.KindShop))
	if err != nil {
		t.Fatalf("new draft: %v", err)
	}
	session, err := editor.NewSession(storage.NewMemoryRepository(), d)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if _, err := newClient(t, server.URL).Content(context.Background(), "bakery"); err == nil {
		t.Fatalf("expected failure")
	}
	if session.Dirty() {
		t.Fatalf("expected session untouched")
	}
}
