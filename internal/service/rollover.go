// internal/service/rollover.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// RolloverScheduler は日付の切り替わり時に購読者へステータスを再配信します。
// ストリークは書き込みが無くても深夜0時に壊れたり at-risk に変わったりするため、
// 長寿命の購読が古いフラグを見続けないように毎日0時に再導出して配信します。
type RolloverScheduler struct {
	scheduler *gocron.Scheduler
	service   ActivityService
	notifier  *Notifier
	logger    *slog.Logger
}

func NewRolloverScheduler(service ActivityService, notifier *Notifier, logger *slog.Logger) *RolloverScheduler {
	r := &RolloverScheduler{
		scheduler: gocron.NewScheduler(time.Local),
		service:   service,
		notifier:  notifier,
		logger:    logger,
	}

	if _, err := r.scheduler.Every(1).Day().At("00:00").Do(r.republish); err != nil {
		// 固定式のジョブ定義なので失敗は設定ミスのみ
		logger.Error("Failed to register rollover job", slog.Any("error", err))
	}
	return r
}

func (r *RolloverScheduler) Start() {
	r.scheduler.StartAsync()
	r.logger.Info("Rollover scheduler started")
}

func (r *RolloverScheduler) Stop() {
	r.scheduler.Stop()
	r.logger.Info("Rollover scheduler stopped")
}

func (r *RolloverScheduler) republish() {
	ctx := context.Background()
	tenants := r.notifier.ActiveStatusTenants()
	for _, tenantID := range tenants {
		status, err := r.service.GetStatus(ctx, tenantID)
		if err != nil {
			r.logger.Warn("Rollover republish failed for tenant", "tenant_id", tenantID, "error", err)
			continue
		}
		r.notifier.PublishStatus(tenantID, status)
	}
	if len(tenants) > 0 {
		r.logger.Info("Rollover republish completed", "tenants", len(tenants))
	}
}
