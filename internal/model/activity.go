// internal/model/activity.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StreakLevel は1日の活動強度を表す3段階のレベルです。
// 順序は COLD < SPARK < FLAME。
type StreakLevel string

const (
	LevelCold  StreakLevel = "COLD"
	LevelSpark StreakLevel = "SPARK"
	LevelFlame StreakLevel = "FLAME"
)

// Active はストリーク集計上「活動あり」とみなされるレベルかどうかを返します。
// SPARK と FLAME は同等に扱い、COLD のみがストリークを切ります。
func (l StreakLevel) Active() bool {
	return l == LevelSpark || l == LevelFlame
}

// Rank はレベルの順序比較用の序数を返します (COLD=0, SPARK=1, FLAME=2)。
func (l StreakLevel) Rank() int {
	switch l {
	case LevelFlame:
		return 2
	case LevelSpark:
		return 1
	default:
		return 0
	}
}

// DailyActivityRecord は1テナント・1暦日あたり1行の活動集計レコードです。
// (tenant_id, date) の複合ユニークインデックスで一意性を保証し、
// 書き込みは常に upsert で行います (insert+update の分岐はしない)。
type DailyActivityRecord struct {
	RecordID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"-"`
	TenantID              uuid.UUID   `gorm:"type:uuid;not null;index:idx_tenant_date,unique" json:"-"`
	Date                  string      `gorm:"size:10;not null;index:idx_tenant_date,unique" json:"date"` // YYYY-MM-DD
	LessonsCompleted      int         `gorm:"not null;default:0" json:"lessons_completed"`
	FeedCardsReviewed     int         `gorm:"not null;default:0" json:"feed_cards_reviewed"`
	QuizQuestionsAnswered int         `gorm:"not null;default:0" json:"quiz_questions_answered"`
	ExamsCompleted        int         `gorm:"not null;default:0" json:"exams_completed"`
	TimeSpentSeconds      int64       `gorm:"not null;default:0" json:"time_spent_seconds"`
	StreakLevel           StreakLevel `gorm:"size:8;not null;default:COLD" json:"streak_level"` // カウンタから導出し、書き込みごとに再計算して保存する
	FirstActivityAt       int64       `gorm:"not null" json:"first_activity_at"`                // epoch ms。初回書き込みで設定し以後不変
	LastActivityAt        int64       `gorm:"not null" json:"last_activity_at"`                 // epoch ms。書き込みごとに更新
	CreatedAt             time.Time   `json:"-"`
	UpdatedAt             time.Time   `json:"-"`
}

func (DailyActivityRecord) TableName() string {
	return "daily_activity_records"
}

// RecordEventRequest はレッスン完了・試験完了のリクエストボディです。
// count 省略時は 1 として扱います。
type RecordEventRequest struct {
	Count int `json:"count" validate:"omitempty,min=1"`
}

// RecordCountRequest はカードレビュー・設問回答のリクエストボディです。
type RecordCountRequest struct {
	Count int `json:"count" validate:"required,min=1"`
}

// RecordTimeRequest は学習時間記録のリクエストボディです。
type RecordTimeRequest struct {
	Seconds int64 `json:"seconds" validate:"required,min=1"`
}
