package health

import (
	"context"
	"runtime"
	"time"
)

var startTime = time.Now()

// DBPinger is optional for health check. If nil, database is reported as disconnected.
type DBPinger interface {
	Ping() error
}

// RedisPinger reports the Redis connection the geo index runs on.
type RedisPinger interface {
	Ping(ctx context.Context) error
}

// CollectResult is the /health/json payload.
type CollectResult struct {
	Status       string               `json:"status"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type RuntimeInfo struct {
	UptimeSeconds int64      `json:"uptimeSeconds"`
	Memory        MemoryInfo `json:"memory"`
	Platform      string     `json:"platform"`
	GoVersion     string     `json:"goVersion"`
}

type MemoryInfo struct {
	RSS      int `json:"rss"`
	HeapUsed int `json:"heapUsed"`
}

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

// CollectHealth gathers status of the relational store and the Redis geo index.
func CollectHealth(ctx context.Context, rdb RedisPinger, db DBPinger) CollectResult {
	result := CollectResult{
		Dependencies: make(map[string]DepStatus),
	}

	dbStatus := "disconnected"
	var dbPingMs *int64
	if db != nil {
		start := time.Now()
		if err := db.Ping(); err == nil {
			ms := time.Since(start).Milliseconds()
			dbPingMs = &ms
			dbStatus = "connected"
		} else {
			dbStatus = "error"
		}
	}
	result.Dependencies["database"] = DepStatus{Status: dbStatus, PingMs: dbPingMs}

	redisStatus := "disconnected"
	var redisPingMs *int64
	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx); err == nil {
			ms := time.Since(start).Milliseconds()
			redisPingMs = &ms
			redisStatus = "connected"
		} else {
			redisStatus = "error"
		}
	}
	result.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPingMs}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	result.Runtime = RuntimeInfo{
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
		Memory: MemoryInfo{
			RSS:      int(mem.Sys),
			HeapUsed: int(mem.HeapAlloc),
		},
		Platform:  runtime.GOOS,
		GoVersion: runtime.Version(),
	}

	// The relational store is the authority; a broken geo index only degrades.
	switch {
	case dbStatus == "connected" && redisStatus == "connected":
		result.Status = "operational"
	case dbStatus == "connected":
		result.Status = "degraded"
	default:
		result.Status = "down"
	}
	return result
}
