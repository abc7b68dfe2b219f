package format

import (
	"fmt"
	"strings"

	"crypto-alert-bot/internal/pattern"
	"crypto-alert-bot/lib/helpers"
)

// NoAlerts is the fixed reply for a cycle that found nothing. Distinct from
// any failure text so an uneventful cycle is never mistaken for a broken one.
const NoAlerts = "✅ No breakouts or breakdowns right now\\."

const header = "🔔 *Crypto Alerts* 🔔"

// Alerts renders an alert batch as a single MarkdownV2 message: header line
// plus one line per event, in batch order.
func Alerts(events []pattern.Event) string {
	if len(events) == 0 {
		return NoAlerts
	}

	lines := make([]string, 0, len(events)+1)
	lines = append(lines, header)
	for _, e := range events {
		lines = append(lines, eventLine(e))
	}
	return strings.Join(lines, "\n")
}

func eventLine(e pattern.Event) string {
	verb := "is breaking out\\!"
	glyph := "🚀"
	if e.Direction == pattern.Breakdown {
		verb = "is breaking down\\!"
		glyph = "🔻"
	}

	return fmt.Sprintf("%s *%s* %s \\(%s\\) at $%s",
		glyph,
		helpers.EscapeMarkdownV2(strings.ToUpper(e.Symbol)),
		verb,
		helpers.EscapeMarkdownV2(fmt.Sprintf("%+.2f%%", e.ChangePct)),
		helpers.FormatPriceUS(e.PriceUSD, true),
	)
}
