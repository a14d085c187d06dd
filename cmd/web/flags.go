package main

import (
	"fmt"
	"time"
)

func parseDelay(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid delay %q: must be positive", raw)
	}
	return d, nil
}
