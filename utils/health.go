package utils

import (
	"net/http"
	"sync"
	"time"
)

// HealthStatus represents current reachability of the collector API.
type HealthStatus struct {
	CollectorAPI bool      `json:"collectorApi"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic reachability checks against the
// collector API base URL and updates in-memory state.
func StartHealthMonitor(baseURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		client := &http.Client{Timeout: 5 * time.Second}

		for range ticker.C {
			reachable := false
			resp, err := client.Head(baseURL)
			if err == nil {
				resp.Body.Close()
				reachable = true
			}

			mu.Lock()
			currentHealth = HealthStatus{
				CollectorAPI: reachable,
				CheckedAt:    time.Now(),
			}
			mu.Unlock()
		}
	}()
}
