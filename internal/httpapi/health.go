package httpapi

import (
	"net/http"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

const engineVersion = "1.0.0"

type systemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	GOMAXPROCS    int    `json:"gomaxprocs"`
	MemoryAlloc   uint64 `json:"memory_alloc_bytes"`
	MemorySys     uint64 `json:"memory_sys_bytes"`
}

func currentSystemInfo() systemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return systemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
		MemoryAlloc:   m.Alloc,
		MemorySys:     m.Sys,
	}
}

type healthResponse struct {
	Status        string     `json:"status"`
	Timestamp     time.Time  `json:"timestamp"`
	EngineVersion string     `json:"engine_version"`
	Uptime        string     `json:"uptime"`
	System        systemInfo `json:"system"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		Timestamp:     time.Now(),
		EngineVersion: engineVersion,
		Uptime:        humanize.RelTime(s.startTime, time.Now(), "", ""),
		System:        currentSystemInfo(),
	})
}

func (s *Server) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleHealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

type metricsResponse struct {
	Timestamp     time.Time  `json:"timestamp"`
	EngineVersion string     `json:"engine_version"`
	Uptime        string     `json:"uptime"`
	System        systemInfo `json:"system"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metricsResponse{
		Timestamp:     time.Now(),
		EngineVersion: engineVersion,
		Uptime:        humanize.RelTime(s.startTime, time.Now(), "", ""),
		System:        currentSystemInfo(),
	})
}
