/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"time"
)

// formatSize renders a byte count with SI units, e.g. "1.5 kB".
func formatSize(n int) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	value, exp := float64(n)/unit, 0
	for value >= unit && exp < 5 {
		value /= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", value, "kMGTPE"[exp])
}

func logServed(cfg *Config, what string, written int, ip string, start time.Time) {
	logf(cfg, "SERVE: %s (%s) to %s in %s",
		what,
		formatSize(written),
		ip,
		time.Since(start).Round(time.Microsecond),
	)
}
