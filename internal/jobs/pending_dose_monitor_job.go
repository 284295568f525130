package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
)

// pendingDoseGracePeriod gives the dose calculation service time to respond
// before an approved order counts as stuck.
const pendingDoseGracePeriod = time.Minute

// PendingDoseMonitorJob watches for approved orders whose dose never arrived.
// The dose request is at-most-once, so the job only reports; operators decide
// whether to replay the callback manually.
type PendingDoseMonitorJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewPendingDoseMonitorJob creates a job that checks once a minute.
func NewPendingDoseMonitorJob(db *gorm.DB, logger *slog.Logger) *PendingDoseMonitorJob {
	return &PendingDoseMonitorJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "pending_dose_monitor_job"),
	}
}

// Start begins the monitor, running at the top of every minute.
func (j *PendingDoseMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		var rows []struct {
			ID           string
			DateComplete time.Time
		}
		err := j.db.WithContext(ctx).Raw(`
			SELECT id, date_complete
			FROM medicines
			WHERE status = ? AND dose IS NULL AND date_complete < ?
		`, int(medicine.StatusCompleted), time.Now().UTC().Add(-pendingDoseGracePeriod)).
			Scan(&rows).Error
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending dose check failed", "error", err)
			return
		}

		for _, row := range rows {
			j.logger.WarnContext(ctx, "Approved order still has no dose",
				"medicine_id", row.ID,
				"approved_at", row.DateComplete,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending dose monitor started (running every minute)")
	return nil
}

// Stop stops the monitor.
func (j *PendingDoseMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending dose monitor stopped")
}
