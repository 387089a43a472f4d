package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
	"github.com/vedantwpatil/trendbot/strategy"
)

type Config struct {
	HTTPAddr        string
	StockServiceURL string
	NewsBaseURL     string
	DBPath          string
	LogLevel        string
	LookbackDays    int
	TopN            int
	Workers         int
	Strategy        strategy.Config
}

// Load reads an optional .env file and the environment. The strategy block
// defaults to strategy.DefaultConfig and is validated here.
func Load() (Config, error) {
	return load(".env")
}

func load(envFile string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	v.AutomaticEnv()

	def := strategy.DefaultConfig()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("STOCK_SERVICE_URL", "http://localhost:8001")
	v.SetDefault("NEWS_BASE_URL", "https://news.google.com")
	v.SetDefault("DB_PATH", "trendbot.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOOKBACK_DAYS", 504)
	v.SetDefault("TOP_N", 10)
	v.SetDefault("WORKERS", 8)
	v.SetDefault("FAST_EMA", def.FastWindow)
	v.SetDefault("SLOW_EMA", def.SlowWindow)
	v.SetDefault("VOL_LOOKBACK", def.VolLookback)
	v.SetDefault("TARGET_VOL", def.TargetVol)
	v.SetDefault("MAX_LEVERAGE", def.MaxLeverage)
	v.SetDefault("TRANSACTION_COST_BPS", def.TransactionCostBps)

	cfg := Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		StockServiceURL: v.GetString("STOCK_SERVICE_URL"),
		NewsBaseURL:     v.GetString("NEWS_BASE_URL"),
		DBPath:          v.GetString("DB_PATH"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LookbackDays:    v.GetInt("LOOKBACK_DAYS"),
		TopN:            v.GetInt("TOP_N"),
		Workers:         v.GetInt("WORKERS"),
		Strategy: strategy.Config{
			FastWindow:         v.GetInt("FAST_EMA"),
			SlowWindow:         v.GetInt("SLOW_EMA"),
			VolLookback:        v.GetInt("VOL_LOOKBACK"),
			TargetVol:          v.GetFloat64("TARGET_VOL"),
			MaxLeverage:        v.GetFloat64("MAX_LEVERAGE"),
			TransactionCostBps: v.GetFloat64("TRANSACTION_COST_BPS"),
		},
	}

	if err := cfg.Strategy.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.LookbackDays <= 0 {
		return Config{}, fmt.Errorf("LOOKBACK_DAYS must be positive, got %d", cfg.LookbackDays)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
