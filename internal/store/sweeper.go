package store

import (
	"context"
	"log/slog"
	"time"
)

// EvictCallback is called for each session id removed by the sweeper.
type EvictCallback func(sessionID string)

// StartSweeper runs a background goroutine that periodically evicts
// sessions older than ttl, invoking onEvict (if non-nil) for each removed
// id. It stops when ctx is canceled.
func StartSweeper(ctx context.Context, s Store, ttl, interval time.Duration, onEvict EvictCallback) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session sweeper started", "interval", interval, "ttl", ttl)

		for {
			select {
			case <-ticker.C:
				removed := s.Sweep(time.Now(), ttl)
				if len(removed) == 0 {
					continue
				}
				if onEvict != nil {
					for _, id := range removed {
						onEvict(id)
					}
				}
				slog.Info("Session sweeper evicted expired sessions",
					"removed", len(removed),
					"remaining", s.Len())
			case <-ctx.Done():
				slog.Info("Session sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}
