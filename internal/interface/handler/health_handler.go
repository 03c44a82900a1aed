package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

// readyCheckTimeout は依存サービス1件あたりのチェック時間の上限です
const readyCheckTimeout = 3 * time.Second

// HealthChecker はヘルスチェックを実行するインターフェースです
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler はヘルスチェック関連のHTTPハンドラーです
type HealthHandler struct {
	checkers map[string]HealthChecker
}

// NewHealthHandler は新しいHealthHandlerを作成します
func NewHealthHandler(checkers map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers}
}

// HealthResponse はヘルスチェックレスポンスを定義します
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse はレディネスチェックレスポンスを定義します
type ReadyResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services,omitempty"`
}

// ServiceStatus はサービスのステータスを定義します
type ServiceStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check はライブネスチェックを実行します
// GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready はPostgreSQL・Redis・MinIOへの疎通を並行して確認します
// GET /ready
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	services := CheckAll(ctx, h.checkers)

	status, code := "ready", http.StatusOK
	for name, s := range services {
		if s.Status != "healthy" {
			logger.Warn(ctx, "dependency not ready", "service", name, "error", s.Message)
			status, code = "not_ready", http.StatusServiceUnavailable
		}
	}

	return c.JSON(code, ReadyResponse{
		Status:   status,
		Services: services,
	})
}

// CheckAll は全チェッカーを並行に実行して結果を返します
func CheckAll(ctx context.Context, checkers map[string]HealthChecker) map[string]ServiceStatus {
	services := make(map[string]ServiceStatus, len(checkers))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, checker := range checkers {
		name, checker := name, checker
		wg.Add(1)
		go func() {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, readyCheckTimeout)
			defer cancel()

			s := ServiceStatus{Status: "healthy"}
			if err := checker.Health(checkCtx); err != nil {
				s = ServiceStatus{Status: "unhealthy", Message: err.Error()}
			}

			mu.Lock()
			services[name] = s
			mu.Unlock()
		}()
	}

	wg.Wait()
	return services
}
