// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "streak-keep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultAuthEnabled = false

	// レベル判定閾値のデフォルト
	DefaultLessonsForFlame   = 1
	DefaultExamsForFlame     = 1
	DefaultCardsForSpark     = 10
	DefaultQuestionsForSpark = 5
	DefaultTimeForSpark      = 300 // 秒

	// ストリーク走査窓。正しさはこの窓内でのみ定義される
	DefaultStreakWindowDays = 365
)
