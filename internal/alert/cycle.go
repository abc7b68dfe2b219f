package alert

import (
	"context"
	"fmt"
	"time"

	"crypto-alert-bot/internal/format"
	"crypto-alert-bot/internal/market"
	"crypto-alert-bot/internal/pattern"
	"crypto-alert-bot/lib/helpers"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// cycleTimeout bounds one full fetch+notify pass, well under the scheduling
// interval so a hung provider cannot stack cycles indefinitely.
const cycleTimeout = 30 * time.Second

var (
	cyclesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptoalert",
		Subsystem: "bot",
		Name:      "cycles_total",
		Help:      "The total number of alert cycles run, by outcome",
	}, []string{"outcome"})
	alertEventsPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cryptoalert",
		Subsystem: "bot",
		Name:      "alert_events_published",
		Help:      "The total number of breakout/breakdown events pushed to chats",
	})
)

func init() {
	prometheus.MustRegister(cyclesTotal)
	prometheus.MustRegister(alertEventsPublished)
}

// MarketSource provides batched market snapshots.
type MarketSource interface {
	Markets(ctx context.Context, assetIDs []string) ([]market.Snapshot, error)
}

// Notifier delivers one text message to one chat.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// CycleResult is the terminal outcome of one cycle. Err is nil iff Success.
type CycleResult struct {
	Success bool
	Message string
	Err     error
}

// Runner orchestrates one fetch → detect → format → notify pass. It is the
// sole containment boundary: Run returns a result, it never lets a failure
// escape to the scheduler or a command handler.
type Runner struct {
	source         MarketSource
	notifier       Notifier
	assetIDs       []string
	operatorChatID int64
}

func NewRunner(source MarketSource, notifier Notifier, assetIDs []string, operatorChatID int64) *Runner {
	return &Runner{
		source:         source,
		notifier:       notifier,
		assetIDs:       assetIDs,
		operatorChatID: operatorChatID,
	}
}

// Run executes one alert cycle against chatID. On fetch failure only the
// operator chat is notified; on success exactly one message reaches chatID.
func (r *Runner) Run(ctx context.Context, chatID int64) (result CycleResult) {
	ctx, cancel := context.WithTimeout(ctx, cycleTimeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			err := errors.Errorf("panic in alert cycle: %v", rec)
			log.Error(err)
			r.escalate(ctx, err)
			result = CycleResult{Err: err}
		}
		if result.Success {
			cyclesTotal.WithLabelValues("success").Inc()
		} else {
			cyclesTotal.WithLabelValues("failure").Inc()
		}
	}()

	snapshots, err := r.source.Markets(ctx, r.assetIDs)
	if err != nil {
		log.Errorf("alert cycle fetch failed: %v", err)
		r.escalate(ctx, err)
		return CycleResult{Err: err}
	}

	events := pattern.Detect(snapshots)
	message := format.Alerts(events)

	if err := r.notifier.Notify(ctx, chatID, message); err != nil {
		log.Errorf("alert cycle notify failed: %v", err)
		r.escalate(ctx, errors.Wrap(err, "could not deliver alert message"))
		return CycleResult{Err: err}
	}

	alertEventsPublished.Add(float64(len(events)))
	log.Debugf("alert cycle complete: %d snapshots, %d events", len(snapshots), len(events))
	return CycleResult{Success: true, Message: message}
}

// Check runs one cycle on behalf of a user command.
func (r *Runner) Check(ctx context.Context, chatID int64) error {
	return r.Run(ctx, chatID).Err
}

// escalate pushes a short diagnostic to the operator chat. Best effort: a
// failure here is logged and swallowed.
func (r *Runner) escalate(ctx context.Context, cause error) {
	diagnostic := fmt.Sprintf("⚠️ *Alert cycle failed*: %s", helpers.EscapeMarkdownV2(cause.Error()))
	if err := r.notifier.Notify(ctx, r.operatorChatID, diagnostic); err != nil {
		log.Errorf("failed to notify operator chat: %v", err)
	}
}
