package commands

import (
	"context"
	"fmt"
	"strings"

	"crypto-alert-bot/internal/market"
	"crypto-alert-bot/lib/helpers"
	"crypto-alert-bot/lib/translation"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// PriceSource resolves a single asset's USD spot price.
type PriceSource interface {
	SimplePrice(ctx context.Context, assetID string) (float64, error)
}

// CommandPrice handles /price <asset-id>. A missing argument yields a usage
// hint without touching the network; an unrecognized id and a transport
// failure yield distinct replies.
func CommandPrice(ctx context.Context, source PriceSource, argument string) string {
	log.Debugf("processing command /price with argument: %s", argument)

	assetID := strings.ToLower(strings.TrimSpace(argument))
	if assetID == "" {
		return helpers.EscapeMarkdownV2(translation.Translate("Usage: /price <asset-id>, e.g. /price bitcoin"))
	}

	priceUSD, err := source.SimplePrice(ctx, assetID)
	switch {
	case errors.Is(err, market.ErrUnknownAsset):
		return helpers.EscapeMarkdownV2(fmt.Sprintf(translation.Translate("Asset '%s' not found. Use the provider's asset id, e.g. bitcoin."), assetID))
	case err != nil:
		log.Error(errors.Wrap(err, "command /price"))
		return helpers.EscapeMarkdownV2(translation.Translate("Could not fetch the price right now. Please try again later."))
	}

	return fmt.Sprintf("*%s price:*\n\n▫️`%.2f` *USD*", helpers.EscapeMarkdownV2(assetID), priceUSD)
}
