// Package health provides comprehensive health check functionality for the DataForge blockchain.
//
// This package implements health monitoring for all critical services including:
// - Database connectivity and performance
// - RPC node status and synchronization
// - Block lag monitoring
// - Module-specific health checks
//
// The health check system supports multiple endpoints:
// - /health - Basic liveness check
// - /health/ready - Readiness check for load balancers
// - /health/detailed - Comprehensive status with metrics
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/server/api"
	"github.com/gorilla/mux"

	rpcclient "github.com/cometbft/cometbft/rpc/client/http"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
	StatusUnknown   Status = "unknown"
)

// ComponentHealth represents the health status of a single component
type ComponentHealth struct {
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metrics   map[string]interface{} `json:"metrics,omitempty"`
}

// HealthCheck represents the overall health check response
type HealthCheck struct {
	Status     Status                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
	Metrics    map[string]interface{}     `json:"metrics,omitempty"`
}

// Checker performs health checks on various components
type Checker struct {
	logger    log.Logger
	rpcClient *rpcclient.HTTP
	apiServer *api.Server
	clientCtx client.Context

	// Thresholds for health determination
	maxBlockLag     int64
	maxResponseTime time.Duration
	minPeerCount    int

	mu            sync.RWMutex
	lastCheck     time.Time
	cachedHealth  *HealthCheck
	cacheDuration time.Duration
}

// Config holds configuration for the health checker
type Config struct {
	// RPCURL is the URL of the CometBFT RPC endpoint
	RPCURL string

	// MaxBlockLag is the maximum acceptable block lag before marking as unhealthy
	MaxBlockLag int64

	// MaxResponseTime is the maximum acceptable RPC response time
	MaxResponseTime time.Duration

	// MinPeerCount is the minimum number of peers before marking as degraded
	MinPeerCount int

	// CacheDuration is how long to cache health check results
	CacheDuration time.Duration
}

// DefaultConfig returns the default health check configuration
func DefaultConfig() Config {
	return Config{
		RPCURL:          "http://localhost:26657",
		MaxBlockLag:     10,
		MaxResponseTime: 5 * time.Second,
		MinPeerCount:    3,
		CacheDuration:   5 * time.Second,
	}
}

// NewChecker creates a new health checker
func NewChecker(logger log.Logger, cfg Config, clientCtx client.Context) (*Checker, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC URL is required")
	}

	rpcClient, err := rpcclient.New(cfg.RPCURL, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client: %w", err)
	}

	return &Checker{
		logger:          logger,
		rpcClient:       rpcClient,
		clientCtx:       clientCtx,
		maxBlockLag:     cfg.MaxBlockLag,
		maxResponseTime: cfg.MaxResponseTime,
		minPeerCount:    cfg.MinPeerCount,
		cacheDuration:   cfg.CacheDuration,
	}, nil
}

// Check performs a comprehensive health check
func (c *Checker) Check(ctx context.Context, detailed bool) (*HealthCheck, error) {
	// Return cached result if still valid
	if !detailed && c.shouldUseCached() {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.cachedHealth, nil
	}

	health := &HealthCheck{
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
		Metrics:    make(map[string]interface{}),
	}

	// Run checks in parallel for better performance
	var wg sync.WaitGroup
	var mu sync.Mutex

	checks := []struct {
		name string
		fn   func(context.Context) ComponentHealth
	}{
		{"rpc", c.checkRPC},
		{"consensus", c.checkConsensus},
		{"network", c.checkNetwork},
		{"database", c.checkDatabase},
	}

	if detailed {
		checks = append(checks,
			struct {
				name string
				fn   func(context.Context) ComponentHealth
			}{"modules", c.checkModules},
		)
	}

	for _, check := range checks {
		wg.Add(1)
		go func(name string, fn func(context.Context) ComponentHealth) {
			defer wg.Done()
			result := fn(ctx)
			mu.Lock()
			health.Components[name] = result
			mu.Unlock()
		}(check.name, check.fn)
	}

	wg.Wait()

	// Determine overall status
	health.Status = c.calculateOverallStatus(health.Components)

	// Cache the result
	c.mu.Lock()
	c.lastCheck = time.Now()
	c.cachedHealth = health
	c.mu.Unlock()

	return health, nil
}

// checkRPC verifies RPC endpoint connectivity and responsiveness
func (c *Checker) checkRPC(ctx context.Context) ComponentHealth {
	start := time.Now()

	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	status, err := c.rpcClient.Status(timeoutCtx)
	duration := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("RPC connection failed: %v", err),
			Timestamp: time.Now(),
		}
	}

	metrics := map[string]interface{}{
		"response_time_ms": duration.Milliseconds(),
		"node_info":        status.NodeInfo.Moniker,
		"network":          status.NodeInfo.Network,
	}

	componentStatus := StatusHealthy
	message := "RPC endpoint is responsive"

	if duration > c.maxResponseTime/2 {
		componentStatus = StatusDegraded
		message = "RPC endpoint response time is degraded"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkConsensus verifies consensus state and synchronization
func (c *Checker) checkConsensus(ctx context.Context) ComponentHealth {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	status, err := c.rpcClient.Status(timeoutCtx)
	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Failed to get consensus status: %v", err),
			Timestamp: time.Now(),
		}
	}

	// Check if node is syncing
	isSyncing := status.SyncInfo.CatchingUp
	latestBlockHeight := status.SyncInfo.LatestBlockHeight
	latestBlockTime := status.SyncInfo.LatestBlockTime

	metrics := map[string]interface{}{
		"latest_block_height": latestBlockHeight,
		"latest_block_time":   latestBlockTime.Format(time.RFC3339),
		"catching_up":         isSyncing,
	}

	// Check block lag
	blockAge := time.Since(latestBlockTime)
	if blockAge > time.Minute*5 {
		metrics["block_age_seconds"] = blockAge.Seconds()
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Node is stale (last block %.1f minutes ago)", blockAge.Minutes()),
			Timestamp: time.Now(),
			Metrics:   metrics,
		}
	}

	componentStatus := StatusHealthy
	message := "Consensus is healthy"

	if isSyncing {
		componentStatus = StatusDegraded
		message = "Node is catching up with the network"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkNetwork verifies network connectivity and peer status
func (c *Checker) checkNetwork(ctx context.Context) ComponentHealth {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	netInfo, err := c.rpcClient.NetInfo(timeoutCtx)
	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Failed to get network info: %v", err),
			Timestamp: time.Now(),
		}
	}

	peerCount := netInfo.NPeers

	metrics := map[string]interface{}{
		"peer_count": peerCount,
		"listening":  netInfo.Listening,
		"listeners":  netInfo.Listeners,
	}

	componentStatus := StatusHealthy
	message := fmt.Sprintf("Network healthy with %d peers", peerCount)

	if peerCount < c.minPeerCount {
		componentStatus = StatusDegraded
		message = fmt.Sprintf("Low peer count: %d (minimum recommended: %d)", peerCount, c.minPeerCount)
	}

	if peerCount == 0 {
		componentStatus = StatusUnhealthy
		message = "No peers connected"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkDatabase verifies database connectivity and performance
func (c *Checker) checkDatabase(ctx context.Context) ComponentHealth {
	// For Cosmos SDK apps, the database is accessed through the app state
	// We verify it by attempting to query the latest block
	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	start := time.Now()
	_, err := c.rpcClient.ABCIInfo(timeoutCtx)
	duration := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Database query failed: %v", err),
			Timestamp: time.Now(),
		}
	}

	metrics := map[string]interface{}{
		"query_time_ms": duration.Milliseconds(),
	}

	componentStatus := StatusHealthy
	message := "Database is responsive"

	if duration > time.Second {
		componentStatus = StatusDegraded
		message = "Database response time is degraded"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkModules performs health checks on individual blockchain modules
func (c *Checker) checkModules(ctx context.Context) ComponentHealth {
	// This is a placeholder for module-specific health checks
	// In production, you would query each module's state and verify it's functioning correctly

	modules := []string{"auth", "bank", "staking", "gov", "databounty"}
	moduleStatus := make(map[string]string)

	for _, module := range modules {
		moduleStatus[module] = "healthy"
	}

	metrics := map[string]interface{}{
		"modules": moduleStatus,
	}

	return ComponentHealth{
		Status:    StatusHealthy,
		Message:   "All modules operational",
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// calculateOverallStatus determines the overall health status based on component statuses
func (c *Checker) calculateOverallStatus(components map[string]ComponentHealth) Status {
	hasUnhealthy := false
	hasDegraded := false

	for _, component := range components {
		switch component.Status {
		case StatusUnhealthy:
			hasUnhealthy = true
		case StatusDegraded:
			hasDegraded = true
		}
	}

	if hasUnhealthy {
		return StatusUnhealthy
	}
	if hasDegraded {
		return StatusDegraded
	}
	return StatusHealthy
}

// shouldUseCached determines if cached health check results should be used
func (c *Checker) shouldUseCached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cachedHealth == nil {
		return false
	}

	return time.Since(c.lastCheck) < c.cacheDuration
}

// RegisterRoutes registers health check endpoints with the API server
func (c *Checker) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", c.handleHealth).Methods("GET")
	router.HandleFunc("/health/ready", c.handleHealthReady).Methods("GET")
	router.HandleFunc("/health/detailed", c.handleHealthDetailed).Methods("GET")
}

// handleHealth handles the basic liveness check endpoint
func (c *Checker) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// handleHealthReady handles the readiness check endpoint
func (c *Checker) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	health, err := c.Check(ctx, false)

	if err != nil {
		c.logger.Error("Health check failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	statusCode := http.StatusOK
	if health.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	} else if health.Status == StatusDegraded {
		statusCode = http.StatusOK // Still ready, but degraded
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(health)
}

// handleHealthDetailed handles the detailed health check endpoint
func (c *Checker) handleHealthDetailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	health, err := c.Check(ctx, true)

	if err != nil {
		c.logger.Error("Detailed health check failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	statusCode := http.StatusOK
	if health.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(health)
}
