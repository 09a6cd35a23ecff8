package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/germanamz/minutes/pkg/engine"
	"github.com/germanamz/minutes/pkg/modeladapter/usage"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// fmtTokens formats a token count for display, using k/M suffixes.
func fmtTokens(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// fmtDuration formats a duration for display.
func fmtDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", m, sec)
}

// usageLine summarizes a cycle: provider, the session's token usage, latency
// and parse strategy.
func usageLine(out engine.Outcome, total usage.TokenCount) string {
	tokens := fmtTokens(total.Total()) + " tokens"
	if total.Estimated {
		tokens = "~" + tokens
	}

	parts := []string{out.Provider, tokens, fmtDuration(out.Duration)}
	if out.Strategy != "" {
		parts = append(parts, string(out.Strategy))
	}
	return strings.Join(parts, " · ")
}
