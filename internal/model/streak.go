// internal/model/streak.go
package model

// StreakStatus はストリークの現在状態です。永続化せず、毎回レコード窓から再導出します。
type StreakStatus struct {
	CurrentStreak  int         `json:"current_streak"`
	LongestStreak  int         `json:"longest_streak"`
	TodayLevel     StreakLevel `json:"today_level"`
	LastActiveDate *string     `json:"last_active_date,omitempty"` // 直近の非COLD日の日付キー。存在しなければ省略
	IsAtRisk       bool        `json:"is_at_risk"`
}

// EmptyStreakStatus は履歴が空のときの規定ステータスを返します。
func EmptyStreakStatus() *StreakStatus {
	return &StreakStatus{
		CurrentStreak:  0,
		LongestStreak:  0,
		TodayLevel:     LevelCold,
		LastActiveDate: nil,
		IsAtRisk:       false,
	}
}

// LifetimeTotals は全履歴にわたる各カウンタの累計です。
type LifetimeTotals struct {
	LessonsCompleted      int64 `json:"lessons_completed"`
	FeedCardsReviewed     int64 `json:"feed_cards_reviewed"`
	QuizQuestionsAnswered int64 `json:"quiz_questions_answered"`
	ExamsCompleted        int64 `json:"exams_completed"`
	TimeSpentSeconds      int64 `json:"time_spent_seconds"`
}

// StreakThresholds はレベル判定の閾値設定です。
// 同一レベル内は OR 結合、判定は FLAME → SPARK の順で最初に一致したものが採用されます。
type StreakThresholds struct {
	LessonsForFlame   int
	ExamsForFlame     int
	CardsForSpark     int
	QuestionsForSpark int
	TimeForSpark      int64 // 秒
}
