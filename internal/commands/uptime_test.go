package commands

import (
	"strings"
	"testing"
	"time"
)

func TestCommandUptimeFormat(t *testing.T) {
	startedAt := time.Now().Add(-(1*time.Hour + 2*time.Minute + 3*time.Second))
	reply := CommandUptime(startedAt)

	if !strings.Contains(reply, "1h02m03s") {
		t.Errorf("got %q, want HhMmSs uptime", reply)
	}
}

func TestCommandUptimeJustStarted(t *testing.T) {
	reply := CommandUptime(time.Now())

	if !strings.Contains(reply, "0h00m00s") {
		t.Errorf("got %q, want zero uptime", reply)
	}
}
