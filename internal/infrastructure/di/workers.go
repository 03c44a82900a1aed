package di

import (
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/worker"
	"github.com/Hiro-mackay/gc-profile/internal/job"
)

const (
	healthCheckInterval = time.Minute
	avatarSweepInterval = 6 * time.Hour
)

// NewWorkerManager はバックグラウンドジョブを登録したManagerを作成します
func NewWorkerManager(c *Container) *worker.Manager {
	m := worker.NewManager()

	checks := make(map[string]worker.HealthCheckFunc)
	for name, checker := range c.HealthCheckers() {
		checks[name] = checker.Health
	}
	if len(checks) > 0 {
		m.Register(worker.NewHealthCheckJob(checks, healthCheckInterval))
	}

	sweep := job.NewAvatarSweepJob(c.UserProfileRepo, c.AvatarStorage, time.Hour)
	m.Register(worker.NewAvatarSweepJob(sweep.Run, avatarSweepInterval))

	return m
}
