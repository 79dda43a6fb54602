// internal/service/clock.go
package service

import "time"

// Clock は「今日」の日付キーと現在時刻を与えるカレンダークロックです。
// テストで複数日のシーケンスを決定的に再現できるよう、
// グローバルな time.Now ではなく依存として注入します。
type Clock interface {
	Now() time.Time
	Today() string // YYYY-MM-DD (ローカル暦)
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Today() string {
	return time.Now().Format(time.DateOnly)
}
