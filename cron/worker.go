package cron

import (
	"context"
	"time"

	"hotelier/config"
	"hotelier/services/billing"
	"hotelier/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeOverdueSweep = "invoice:overdue_sweep"

// InitOverdueSweeper runs the async worker and the scheduler that
// periodically enqueues the overdue invoice sweep.
func InitOverdueSweeper(billingSvc billing.BillingService) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOverdueSweep, handleOverdueSweep(billingSvc))

	go func() {
		logger.Info("starting overdue sweep worker")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("overdue sweep worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("overdue sweep worker gave up")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

func handleOverdueSweep(billingSvc billing.BillingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		swept, err := billingSvc.SweepOverdue(ctx)
		if err != nil {
			logger.Error("overdue sweep failed", zap.Error(err))
			return err
		}
		logger.Info("overdue sweep completed", zap.Int("marked", swept))
		return nil
	}
}

func runScheduler(redisOpts asynq.RedisClientOpt) {
	logger := utils.GetLogger()

	spec := config.AppConfig.OverdueSweepSpec
	if spec == "" {
		spec = "@every 30m"
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
	})
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeOverdueSweep, nil)); err != nil {
		logger.Error("failed to register overdue sweep schedule", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		logger.Error("overdue sweep scheduler stopped", zap.Error(err))
	}
}
