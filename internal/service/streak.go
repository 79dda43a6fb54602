// internal/service/streak.go
//
// レベル判定とストリーク算出の純粋関数群。
// ストリーク値は一切永続化せず、毎回レコード窓から再導出するため自己修復的で、
// カウンタと齟齬を起こす保存済みストリーク値は存在しない。
package service

import (
	"fmt"
	"sort"
	"time"

	"go_4_streak_keep/internal/model"
)

// ClassifyLevel はカウンタからレベルを導出します。上位レベルから順に評価し、
// 最初に一致したものを採用します (FLAME と SPARK の両方を満たす日は FLAME)。
func ClassifyLevel(record *model.DailyActivityRecord, th model.StreakThresholds) model.StreakLevel {
	if record.LessonsCompleted >= th.LessonsForFlame || record.ExamsCompleted >= th.ExamsForFlame {
		return model.LevelFlame
	}
	if record.FeedCardsReviewed >= th.CardsForSpark ||
		record.QuizQuestionsAnswered >= th.QuestionsForSpark ||
		record.TimeSpentSeconds >= th.TimeForSpark {
		return model.LevelSpark
	}
	return model.LevelCold
}

// parseDateKey は保存済み日付キーを規定フォーマットで解析します。
// 解析できないキーはクラッシュではなくデータ破損エラーとして表面化させます。
func parseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date key %q", model.ErrDataCorrupted, key)
	}
	return t, nil
}

func formatDateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// BuildStreakStatus は日付降順のレコード窓から StreakStatus を導出します。
// windowDays は走査の上限で、正しさはこの窓内でのみ定義されます。
func BuildStreakStatus(todayKey string, records []*model.DailyActivityRecord, windowDays int) (*model.StreakStatus, error) {
	if len(records) == 0 {
		return model.EmptyStreakStatus(), nil
	}

	today, err := parseDateKey(todayKey)
	if err != nil {
		return nil, err
	}

	// 呼び出し元の取得順に依存しないよう降順を保証する (キーは辞書順=日付順)
	sorted := make([]*model.DailyActivityRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	// 窓より長い履歴を渡されても走査は窓内に限定する
	if len(sorted) > windowDays {
		sorted = sorted[:windowDays]
	}

	byDate := make(map[string]*model.DailyActivityRecord, len(sorted))
	for _, r := range sorted {
		if _, err := parseDateKey(r.Date); err != nil {
			return nil, err
		}
		byDate[r.Date] = r
	}

	todayLevel := model.LevelCold
	if r, ok := byDate[todayKey]; ok {
		todayLevel = r.StreakLevel
	}

	current := currentStreak(today, byDate, windowDays)

	longest, err := longestStreak(sorted)
	if err != nil {
		return nil, err
	}
	// 窓走査とアンカー起点の歩行は境界で食い違い得るため、現在値を下限として畳み込む
	if current > longest {
		longest = current
	}

	var lastActiveDate *string
	for _, r := range sorted {
		if r.StreakLevel.Active() {
			d := r.Date
			lastActiveDate = &d
			break
		}
	}

	yesterdayKey := formatDateKey(today.AddDate(0, 0, -1))
	isAtRisk := current > 0 &&
		todayLevel == model.LevelCold &&
		lastActiveDate != nil && *lastActiveDate == yesterdayKey

	return &model.StreakStatus{
		CurrentStreak:  current,
		LongestStreak:  longest,
		TodayLevel:     todayLevel,
		LastActiveDate: lastActiveDate,
		IsAtRisk:       isAtRisk,
	}, nil
}

// currentStreak はアンカー日から1日ずつ遡って連続活動日数を数えます。
// アンカーは今日 (非COLDなら)、さもなくば昨日。昨日も非活動ならストリークは0
// (直近2日のどちらかに活動がなければストリークは存在しない)。
func currentStreak(today time.Time, byDate map[string]*model.DailyActivityRecord, windowDays int) int {
	anchor := today
	if !activeOn(byDate, anchor) {
		anchor = today.AddDate(0, 0, -1)
		if !activeOn(byDate, anchor) {
			return 0
		}
	}

	streak := 0
	day := anchor
	// 窓サイズが安全上限。無限の履歴は走査しない
	for steps := 0; steps < windowDays; steps++ {
		if !activeOn(byDate, day) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func activeOn(byDate map[string]*model.DailyActivityRecord, day time.Time) bool {
	r, ok := byDate[formatDateKey(day)]
	return ok && r.StreakLevel.Active()
}

// longestStreak は日付降順のレコード列を1回走査して最長の連続活動日数を求めます。
// COLD日は走行中のランを確定させ、非COLD日は直前の活動日と暦上連続していれば
// ランを延長、途切れていれば新しいランを開始します。
func longestStreak(sorted []*model.DailyActivityRecord) (int, error) {
	longest, run := 0, 0
	var prev time.Time
	hasPrev := false

	for _, r := range sorted {
		cur, err := parseDateKey(r.Date)
		if err != nil {
			return 0, err
		}

		if !r.StreakLevel.Active() {
			if run > longest {
				longest = run
			}
			run = 0
			hasPrev = false
			continue
		}

		switch {
		case !hasPrev:
			run = 1
		case prev.Equal(cur.AddDate(0, 0, 1)):
			// 降順走査で prev がちょうど1日後 = 暦上連続
			run++
		default:
			if run > longest {
				longest = run
			}
			run = 1
		}
		prev = cur
		hasPrev = true
	}

	if run > longest {
		longest = run
	}
	return longest, nil
}
