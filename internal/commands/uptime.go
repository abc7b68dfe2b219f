package commands

import (
	"fmt"
	"time"

	"crypto-alert-bot/lib/helpers"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// CommandUptime reports time since process start as HhMmSs.
func CommandUptime(startedAt time.Time) string {
	log.Debug("processing command /uptime")

	elapsed := time.Since(startedAt)
	uptime := fmt.Sprintf("%dh%02dm%02ds",
		int(elapsed.Hours()),
		int(elapsed.Minutes())%60,
		int(elapsed.Seconds())%60,
	)

	return fmt.Sprintf("⏱ Uptime: %s \\(started %s\\)",
		helpers.EscapeMarkdownV2(uptime),
		helpers.EscapeMarkdownV2(humanize.Time(startedAt)),
	)
}
