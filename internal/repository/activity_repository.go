// internal/repository/activity_repository.go
package repository

import (
	"context"
	"errors"

	"go_4_streak_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityRepository は日次活動レコードの永続化を担います。
// DB接続/トランザクションはService層から渡される想定。
type ActivityRepository interface {
	FindByDate(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, date string) (*model.DailyActivityRecord, error)
	// FindRecent は日付降順で直近 limit 日分のレコードを返します。
	FindRecent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.DailyActivityRecord, error)
	// Upsert は (tenant_id, date) のユニークインデックスに基づく insert-or-replace です。
	Upsert(ctx context.Context, tx *gorm.DB, record *model.DailyActivityRecord) error
	SumTotals(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.LifetimeTotals, error)
	// DeleteByTenant はアカウントリセット用の一括削除です。
	DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error
}

type gormActivityRepository struct{}

func NewGormActivityRepository() ActivityRepository {
	return &gormActivityRepository{}
}

func (r *gormActivityRepository) FindByDate(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, date string) (*model.DailyActivityRecord, error) {
	var record model.DailyActivityRecord
	result := db.WithContext(ctx).Where("tenant_id = ? AND date = ?", tenantID, date).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// レコードの欠如はエラーではなく「その日は活動なし」の正規状態。
			// 呼び出し元が判別できるようセンチネルで返す
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &record, nil
}

func (r *gormActivityRepository) FindRecent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.DailyActivityRecord, error) {
	var records []*model.DailyActivityRecord
	result := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("date DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *gormActivityRepository) Upsert(ctx context.Context, tx *gorm.DB, record *model.DailyActivityRecord) error {
	// first_activity_at と created_at は初回書き込みの値を保持する
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"lessons_completed",
			"feed_cards_reviewed",
			"quiz_questions_answered",
			"exams_completed",
			"time_spent_seconds",
			"streak_level",
			"last_activity_at",
			"updated_at",
		}),
	}).Create(record)
	return result.Error
}

func (r *gormActivityRepository) SumTotals(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.LifetimeTotals, error) {
	var totals model.LifetimeTotals
	result := db.WithContext(ctx).
		Model(&model.DailyActivityRecord{}).
		Select(
			"COALESCE(SUM(lessons_completed), 0) AS lessons_completed, " +
				"COALESCE(SUM(feed_cards_reviewed), 0) AS feed_cards_reviewed, " +
				"COALESCE(SUM(quiz_questions_answered), 0) AS quiz_questions_answered, " +
				"COALESCE(SUM(exams_completed), 0) AS exams_completed, " +
				"COALESCE(SUM(time_spent_seconds), 0) AS time_spent_seconds").
		Where("tenant_id = ?", tenantID).
		Scan(&totals)
	if result.Error != nil {
		return nil, result.Error
	}
	return &totals, nil
}

func (r *gormActivityRepository) DeleteByTenant(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&model.DailyActivityRecord{})
	return result.Error
}
