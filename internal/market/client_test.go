package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestMarketsDecodesSnapshots(t *testing.T) {
	var gotIDs string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/coins/markets" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotIDs = r.URL.Query().Get("ids")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"bitcoin","symbol":"btc","current_price":64213.5,"price_change_percentage_24h":7.2},
			{"id":"ethereum","symbol":"eth","current_price":2410.0,"price_change_percentage_24h":-6.1}
		]`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	snapshots, err := client.Markets(context.Background(), []string{"bitcoin", "ethereum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotIDs != "bitcoin,ethereum" {
		t.Errorf("got ids param %q, want one batched request for all assets", gotIDs)
	}
	if len(snapshots) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snapshots))
	}
	if snapshots[0].Symbol != "btc" || snapshots[0].PriceUSD != 64213.5 || snapshots[0].Change24h != 7.2 {
		t.Errorf("unexpected first snapshot: %+v", snapshots[0])
	}
	if snapshots[1].Change24h != -6.1 {
		t.Errorf("unexpected second snapshot: %+v", snapshots[1])
	}
}

func TestMarketsNonSuccessStatusIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	snapshots, err := client.Markets(context.Background(), []string{"bitcoin"})
	if err == nil {
		t.Fatal("expected an error for a 503 response")
	}
	if snapshots != nil {
		t.Error("got snapshots alongside an error")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("got %T, want *FetchError", err)
	}
	if fetchErr.Status != http.StatusServiceUnavailable {
		t.Errorf("got status %d, want 503", fetchErr.Status)
	}
}

func TestMarketsUnreachableProviderIsFetchError(t *testing.T) {
	client := NewClientWithBaseURL("http://127.0.0.1:1")
	_, err := client.Markets(context.Background(), []string{"bitcoin"})

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("got %T, want *FetchError", err)
	}
	if fetchErr.Status != 0 {
		t.Errorf("got status %d for a transport failure, want 0", fetchErr.Status)
	}
}

func TestSimplePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/simple/price" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":64213.5}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	price, err := client.SimplePrice(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 64213.5 {
		t.Errorf("got price %v, want 64213.5", price)
	}
}

func TestSimplePriceUnknownAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.SimplePrice(context.Background(), "unknownid")
	if !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("got %v, want ErrUnknownAsset", err)
	}
}
