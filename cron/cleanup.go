package cron

import (
	"context"
	"time"

	"voyago/config"
	sessionRepo "voyago/database/repository/session"
	"voyago/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSessionCleanup = "session:cleanup"

// InitCleanupWorker starts the background worker and a periodic scheduler
// that sweeps sessions older than the configured TTL out of the store.
func InitCleanupWorker(sessions sessionRepo.SessionRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionCleanup, handleCleanupTask(sessions))

	go func() {
		logger.Info("cleanup worker: starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("cleanup worker: stopped", zap.Error(err))
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeSessionCleanup, nil)); err != nil {
		logger.Error("cleanup worker: failed to register schedule", zap.Error(err))
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("cleanup worker: scheduler stopped", zap.Error(err))
		}
	}()
}

func handleCleanupTask(sessions sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
		removed, err := sessions.CleanupOlderThan(ctx, ttl)
		if err != nil {
			utils.GetLogger().Error("cleanup worker: sweep failed", zap.Error(err))
			return err
		}
		if removed > 0 {
			utils.GetLogger().Info("cleanup worker: removed stale sessions",
				zap.Int64("count", removed), zap.Duration("ttl", ttl))
		}
		return nil
	}
}
