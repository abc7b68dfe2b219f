package pattern

import "crypto-alert-bot/internal/market"

// Threshold is the 24h percent move beyond which an alert fires. Strictly
// exclusive on both sides: a move of exactly ±5% stays quiet.
const Threshold = 5.0

type Direction int

const (
	Breakout Direction = iota
	Breakdown
)

// Event is one detected threshold crossing, derived from a single snapshot.
type Event struct {
	Symbol    string
	Direction Direction
	ChangePct float64
	PriceUSD  float64
}

// Detect classifies each snapshot against the threshold. Pure and total;
// output order matches input order.
func Detect(snapshots []market.Snapshot) []Event {
	var events []Event
	for _, s := range snapshots {
		switch {
		case s.Change24h > Threshold:
			events = append(events, Event{Symbol: s.Symbol, Direction: Breakout, ChangePct: s.Change24h, PriceUSD: s.PriceUSD})
		case s.Change24h < -Threshold:
			events = append(events, Event{Symbol: s.Symbol, Direction: Breakdown, ChangePct: s.Change24h, PriceUSD: s.PriceUSD})
		}
	}
	return events
}
