package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"metalprices-service/internal/application"
	"metalprices-service/internal/infrastructure/logx"
)

// saveTimeout bounds one collection and persistence pass.
const saveTimeout = 2 * time.Minute

var _ application.Worker = (*CronWorker)(nil)

// CronWorker persists one reconciled record per day on a fixed
// schedule.
type CronWorker struct {
	svc      *application.MarketService
	schedule string
}

func NewCronWorker(svc *application.MarketService, schedule string) *CronWorker {
	return &CronWorker{svc: svc, schedule: schedule}
}

// Start runs the schedule until ctx is cancelled.
func (w *CronWorker) Start(ctx context.Context) error {
	log := logx.L().With(zap.String("worker", "cron"))

	c := cron.New()
	_, err := c.AddFunc(w.schedule, func() { w.runOnce(ctx, log) })
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron_worker.start", zap.String("schedule", w.schedule))

	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	log.Info("cron_worker.stop")
	return nil
}

func (w *CronWorker) runOnce(ctx context.Context, log *zap.Logger) {
	cctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	rec, err := w.svc.ReconcileToday(cctx, nil)
	if err != nil {
		log.Error("daily_save.failed", zap.Error(err))
		return
	}
	log.Info("daily_save.done", zap.String("date", rec.Date))
}
