// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"

	"go_4_streak_keep/internal/model"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// StreakConfig はレベル判定閾値とストリーク走査窓の設定です。
// 閾値はチューニング可能にするため定数ではなく設定で持ちます。
type StreakConfig struct {
	LessonsForFlame   int   `mapstructure:"lessons_for_flame"`
	ExamsForFlame     int   `mapstructure:"exams_for_flame"`
	CardsForSpark     int   `mapstructure:"cards_for_spark"`
	QuestionsForSpark int   `mapstructure:"questions_for_spark"`
	TimeForSpark      int64 `mapstructure:"time_for_spark"`
	WindowDays        int   `mapstructure:"window_days"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Streak   StreakConfig   `mapstructure:"streak"`
}

// Thresholds は設定値からレベル判定閾値を組み立てます。
func (c *Config) Thresholds() model.StreakThresholds {
	return model.StreakThresholds{
		LessonsForFlame:   c.Streak.LessonsForFlame,
		ExamsForFlame:     c.Streak.ExamsForFlame,
		CardsForSpark:     c.Streak.CardsForSpark,
		QuestionsForSpark: c.Streak.QuestionsForSpark,
		TimeForSpark:      c.Streak.TimeForSpark,
	}
}

// DefaultStreakConfig はテストや未設定時に使う既定値です。
func DefaultStreakConfig() StreakConfig {
	return StreakConfig{
		LessonsForFlame:   DefaultLessonsForFlame,
		ExamsForFlame:     DefaultExamsForFlame,
		CardsForSpark:     DefaultCardsForSpark,
		QuestionsForSpark: DefaultQuestionsForSpark,
		TimeForSpark:      DefaultTimeForSpark,
		WindowDays:        DefaultStreakWindowDays,
	}
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数は APP_ 接頭辞で上書き可能 (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("auth.enabled", "APP_AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY")

	// デフォルト値
	viper.SetDefault("server.port", DefaultServerPort)
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.format", DefaultLogFormat)
	viper.SetDefault("auth.enabled", DefaultAuthEnabled)
	viper.SetDefault("streak.lessons_for_flame", DefaultLessonsForFlame)
	viper.SetDefault("streak.exams_for_flame", DefaultExamsForFlame)
	viper.SetDefault("streak.cards_for_spark", DefaultCardsForSpark)
	viper.SetDefault("streak.questions_for_spark", DefaultQuestionsForSpark)
	viper.SetDefault("streak.time_for_spark", DefaultTimeForSpark)
	viper.SetDefault("streak.window_days", DefaultStreakWindowDays)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	return nil
}
