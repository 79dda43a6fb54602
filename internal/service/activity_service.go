// internal/service/activity_service.go
package service

import (
	"context"
	"errors"

	"go_4_streak_keep/internal/config"
	"go_4_streak_keep/internal/middleware"
	"go_4_streak_keep/internal/model"
	"go_4_streak_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService インターフェース
type ActivityService interface {
	// 記録系。count / seconds が正でなければ書き込み前に拒否する
	RecordLessonCompleted(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error)
	RecordCardsReviewed(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error)
	RecordQuestionsAnswered(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error)
	RecordExamCompleted(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error)
	RecordTimeSpent(ctx context.Context, tenantID uuid.UUID, seconds int64) (*model.DailyActivityRecord, error)

	// 照会系。当日レコードの欠如は (nil, nil) で返す
	GetTodayActivity(ctx context.Context, tenantID uuid.UUID) (*model.DailyActivityRecord, error)
	GetStatus(ctx context.Context, tenantID uuid.UUID) (*model.StreakStatus, error)
	GetLifetimeTotals(ctx context.Context, tenantID uuid.UUID) (*model.LifetimeTotals, error)

	// 購読系。返り値の解除関数は必ず呼ぶこと (ctx キャンセルでも解除される)
	ObserveStatus(ctx context.Context, tenantID uuid.UUID) (<-chan *model.StreakStatus, func(), error)
	ObserveTodayActivity(ctx context.Context, tenantID uuid.UUID) (<-chan *model.DailyActivityRecord, func(), error)

	// アカウントリセット用の一括削除
	ClearActivity(ctx context.Context, tenantID uuid.UUID) error
}

type activityService struct {
	db         *gorm.DB
	repo       repository.ActivityRepository
	clock      Clock
	notifier   *Notifier
	thresholds model.StreakThresholds
	windowDays int
	dayLocks   *keyedMutex
}

func NewActivityService(db *gorm.DB, repo repository.ActivityRepository, clock Clock, notifier *Notifier, cfg *config.Config) ActivityService {
	return &activityService{
		db:         db,
		repo:       repo,
		clock:      clock,
		notifier:   notifier,
		thresholds: cfg.Thresholds(),
		windowDays: cfg.Streak.WindowDays,
		dayLocks:   newKeyedMutex(),
	}
}

// --- 記録系 ---

func (s *activityService) RecordLessonCompleted(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	return s.applyDelta(ctx, tenantID, func(r *model.DailyActivityRecord) {
		r.LessonsCompleted += count
	})
}

func (s *activityService) RecordCardsReviewed(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	return s.applyDelta(ctx, tenantID, func(r *model.DailyActivityRecord) {
		r.FeedCardsReviewed += count
	})
}

func (s *activityService) RecordQuestionsAnswered(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	return s.applyDelta(ctx, tenantID, func(r *model.DailyActivityRecord) {
		r.QuizQuestionsAnswered += count
	})
}

func (s *activityService) RecordExamCompleted(ctx context.Context, tenantID uuid.UUID, count int) (*model.DailyActivityRecord, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	return s.applyDelta(ctx, tenantID, func(r *model.DailyActivityRecord) {
		r.ExamsCompleted += count
	})
}

func (s *activityService) RecordTimeSpent(ctx context.Context, tenantID uuid.UUID, seconds int64) (*model.DailyActivityRecord, error) {
	if seconds <= 0 {
		return nil, model.NewAppError("INVALID_ARGUMENT", "秒数は1以上で指定してください。", "seconds", model.ErrInvalidInput)
	}
	return s.applyDelta(ctx, tenantID, func(r *model.DailyActivityRecord) {
		r.TimeSpentSeconds += seconds
	})
}

func validateCount(count int) error {
	if count <= 0 {
		return model.NewAppError("INVALID_ARGUMENT", "回数は1以上で指定してください。", "count", model.ErrInvalidInput)
	}
	return nil
}

// applyDelta は当日レコードへの「差分適用 + レベル再分類」を1つのアトミックな
// 単位として実行します。同一 (テナント, 日付) のキー排他の下でトランザクション
// 内に fetch → increment → classify → upsert を収めるため、並行する同日の記録は
// 直列化され、インクリメントは合成されます (last-writer-wins にはならない)。
func (s *activityService) applyDelta(ctx context.Context, tenantID uuid.UUID, delta func(*model.DailyActivityRecord)) (*model.DailyActivityRecord, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	// 「今日」と「昨日」の不一致が出ないよう、日付解決は操作ごとに1回だけ
	today := s.clock.Today()
	nowMillis := s.clock.Now().UnixMilli()

	unlock := s.dayLocks.Lock(tenantID.String() + "/" + today)
	defer unlock()

	var saved *model.DailyActivityRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.repo.FindByDate(ctx, tx, tenantID, today)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding daily record in transaction", "date", today, "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "当日の活動レコードの取得に失敗しました。", "", err)
		}

		if errors.Is(err, model.ErrNotFound) {
			// その日の最初のイベントで遅延作成する
			record = &model.DailyActivityRecord{
				RecordID:        uuid.New(),
				TenantID:        tenantID,
				Date:            today,
				FirstActivityAt: nowMillis,
			}
			logger.Debug("Creating new daily record", "date", today)
		}

		delta(record)
		record.LastActivityAt = nowMillis
		// 差分適用と同じカウンタスナップショットからレベルを再導出する
		record.StreakLevel = ClassifyLevel(record, s.thresholds)

		if upsertErr := s.repo.Upsert(ctx, tx, record); upsertErr != nil {
			logger.Error("Error upserting daily record", "date", today, "error", upsertErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "活動レコードの保存に失敗しました。", "", upsertErr)
		}

		saved = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Activity recorded", "date", today, "level", saved.StreakLevel)
	s.publishChange(ctx, tenantID, saved)
	return saved, nil
}

// publishChange はコミット済みの変更を購読者に配信します。
// 配信は記録操作の成否に影響させません。
func (s *activityService) publishChange(ctx context.Context, tenantID uuid.UUID, record *model.DailyActivityRecord) {
	if !s.notifier.HasSubscribers(tenantID) {
		return
	}

	s.notifier.PublishToday(tenantID, record)

	status, err := s.GetStatus(ctx, tenantID)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Failed to rebuild status for subscribers", "tenant_id", tenantID, "error", err)
		return
	}
	s.notifier.PublishStatus(tenantID, status)
}

// --- 照会系 ---

func (s *activityService) GetTodayActivity(ctx context.Context, tenantID uuid.UUID) (*model.DailyActivityRecord, error) {
	record, err := s.repo.FindByDate(ctx, s.db, tenantID, s.clock.Today())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "当日の活動レコードの取得に失敗しました。", "", err)
	}
	return record, nil
}

func (s *activityService) GetStatus(ctx context.Context, tenantID uuid.UUID) (*model.StreakStatus, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	records, err := s.repo.FindRecent(ctx, s.db, tenantID, s.windowDays)
	if err != nil {
		logger.Error("Failed to load activity window", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "活動履歴の取得に失敗しました。", "", err)
	}

	status, err := BuildStreakStatus(s.clock.Today(), records, s.windowDays)
	if err != nil {
		logger.Error("Failed to derive streak status", "error", err)
		return nil, model.NewAppError("DATA_CORRUPTED", "保存されている活動データが不正です。", "", err)
	}
	return status, nil
}

func (s *activityService) GetLifetimeTotals(ctx context.Context, tenantID uuid.UUID) (*model.LifetimeTotals, error) {
	totals, err := s.repo.SumTotals(ctx, s.db, tenantID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to sum lifetime totals", "tenant_id", tenantID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "累計の取得に失敗しました。", "", err)
	}
	return totals, nil
}

// --- 購読系 ---

func (s *activityService) ObserveStatus(ctx context.Context, tenantID uuid.UUID) (<-chan *model.StreakStatus, func(), error) {
	// 購読開始時点のステータスを即時に1件流す
	status, err := s.GetStatus(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	ch, cancel := s.notifier.SubscribeStatus(tenantID)
	s.notifier.PublishStatus(tenantID, status)

	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ch, cancel, nil
}

func (s *activityService) ObserveTodayActivity(ctx context.Context, tenantID uuid.UUID) (<-chan *model.DailyActivityRecord, func(), error) {
	record, err := s.GetTodayActivity(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	ch, cancel := s.notifier.SubscribeToday(tenantID)
	s.notifier.PublishToday(tenantID, record)

	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ch, cancel, nil
}

// --- リセット ---

func (s *activityService) ClearActivity(ctx context.Context, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteByTenant(ctx, tx, tenantID); err != nil {
			logger.Error("Failed to clear activity records", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "活動レコードの削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Activity records cleared")
	if s.notifier.HasSubscribers(tenantID) {
		s.notifier.PublishToday(tenantID, nil)
		s.notifier.PublishStatus(tenantID, model.EmptyStreakStatus())
	}
	return nil
}
