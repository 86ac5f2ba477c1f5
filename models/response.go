package models

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status    string     `json:"status"` // "healthy" or "degraded"
	Uptime    string     `json:"uptime"`
	Version   string     `json:"version"`
	Browser   *PoolStats `json:"browser,omitempty"`
	Store     string     `json:"store"`
	CacheSize int        `json:"cache_size"`
}

// PoolStats reports the state of the browser page pool.
type PoolStats struct {
	MaxPages   int `json:"max_pages"`
	BrowserPID int `json:"browser_pid"`
}
