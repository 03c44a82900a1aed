package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_job_runs_total",
			Help: "Total number of background job runs",
		},
		[]string{"job", "result"},
	)

	dependencyUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_up",
			Help: "Whether a backing service answered the last health check (1) or not (0)",
		},
		[]string{"service"},
	)
)

// HealthCheckFunc は依存サービス1件の疎通確認です
type HealthCheckFunc func(ctx context.Context) error

// NewHealthCheckJob は依存サービス(PostgreSQL・Redis・MinIO)の疎通を定期的に確認するジョブを作成します
// 失敗したサービスはdependency_upを0にし、まとめてエラーとして返します
func NewHealthCheckJob(checks map[string]HealthCheckFunc, interval time.Duration) Job {
	if interval <= 0 {
		interval = time.Minute
	}

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return Job{
		Name:     "health_check",
		Interval: interval,
		Timeout:  10 * time.Second,
		Fn: func(ctx context.Context) error {
			var errs []error
			for _, name := range names {
				if err := checks[name](ctx); err != nil {
					dependencyUp.WithLabelValues(name).Set(0)
					slog.Warn("health check failed", "service", name, "error", err)
					errs = append(errs, fmt.Errorf("%s: %w", name, err))
					continue
				}
				dependencyUp.WithLabelValues(name).Set(1)
			}
			return errors.Join(errs...)
		},
	}
}

// NewAvatarSweepJob は孤立したアバター画像を削除するジョブを作成します
func NewAvatarSweepJob(sweepFn func(ctx context.Context) (int, error), interval time.Duration) Job {
	if interval <= 0 {
		interval = time.Hour
	}

	return Job{
		Name:     "avatar_sweep",
		Interval: interval,
		Fn: func(ctx context.Context) error {
			count, err := sweepFn(ctx)
			if err != nil {
				return err
			}
			if count > 0 {
				slog.Info("avatar sweep completed", "deleted", count)
			}
			return nil
		},
	}
}
