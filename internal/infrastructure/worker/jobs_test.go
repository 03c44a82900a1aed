package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthCheckJob_AllHealthy(t *testing.T) {
	job := NewHealthCheckJob(map[string]HealthCheckFunc{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return nil },
	}, 0)

	assert.Equal(t, "health_check", job.Name)
	assert.Equal(t, time.Minute, job.Interval)
	require.NoError(t, job.Fn(context.Background()))
	assert.Equal(t, float64(1), testutil.ToFloat64(dependencyUp.WithLabelValues("postgres")))
}

func TestNewHealthCheckJob_ReportsFailures(t *testing.T) {
	job := NewHealthCheckJob(map[string]HealthCheckFunc{
		"minio": func(context.Context) error { return errors.New("connection refused") },
		"redis": func(context.Context) error { return nil },
	}, time.Second)

	err := job.Fn(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "minio: connection refused")
	assert.Equal(t, float64(0), testutil.ToFloat64(dependencyUp.WithLabelValues("minio")))
	assert.Equal(t, float64(1), testutil.ToFloat64(dependencyUp.WithLabelValues("redis")))
}

func TestNewAvatarSweepJob(t *testing.T) {
	calls := 0
	job := NewAvatarSweepJob(func(context.Context) (int, error) {
		calls++
		return 2, nil
	}, 0)

	assert.Equal(t, time.Hour, job.Interval)
	require.NoError(t, job.Fn(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestManager_RunsJobImmediatelyAndStops(t *testing.T) {
	ran := make(chan struct{}, 1)
	m := NewManager()
	m.Register(Job{
		Name:     "tick",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		},
	})

	m.Start()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}

	m.Shutdown(time.Second)
}
