package commands

import (
	"context"
	"strings"
	"testing"

	"crypto-alert-bot/internal/market"

	"github.com/pkg/errors"
)

type fakePriceSource struct {
	price float64
	err   error
	calls int
}

func (f *fakePriceSource) SimplePrice(_ context.Context, assetID string) (float64, error) {
	f.calls++
	return f.price, f.err
}

func TestCommandPrice(t *testing.T) {
	source := &fakePriceSource{price: 64213.5}
	reply := CommandPrice(context.Background(), source, "bitcoin")

	if !strings.Contains(reply, "64213.50") {
		t.Errorf("reply missing formatted price: %q", reply)
	}
	if !strings.Contains(reply, "bitcoin") {
		t.Errorf("reply missing asset id: %q", reply)
	}
}

func TestCommandPriceUnknownAsset(t *testing.T) {
	source := &fakePriceSource{err: errors.Wrap(market.ErrUnknownAsset, "unknownid")}
	reply := CommandPrice(context.Background(), source, "unknownid")

	if !strings.Contains(reply, "not found") {
		t.Errorf("got %q, want the distinct not-found reply", reply)
	}
}

func TestCommandPriceTransportFailure(t *testing.T) {
	source := &fakePriceSource{err: &market.FetchError{Status: 503}}
	reply := CommandPrice(context.Background(), source, "bitcoin")

	if !strings.Contains(reply, "Could not fetch") {
		t.Errorf("got %q, want the distinct error reply", reply)
	}
	if strings.Contains(reply, "not found") {
		t.Error("transport failure conflated with an unknown asset")
	}
}

func TestCommandPriceMissingArgument(t *testing.T) {
	source := &fakePriceSource{}
	reply := CommandPrice(context.Background(), source, "  ")

	if !strings.Contains(reply, "Usage") {
		t.Errorf("got %q, want a usage hint", reply)
	}
	if source.calls != 0 {
		t.Errorf("made %d network calls for a missing argument, want 0", source.calls)
	}
}
