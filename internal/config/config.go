package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the label station backend needs at startup.
type Config struct {
	ListenAddr string
	DBPath     string
	RedisAddr  string
	AuthSecret string
	CatalogTTL time.Duration
	Sync       SyncConfig
	Import     ImportConfig
}

// SyncConfig configures the remote inventory endpoints. SaveURL and ListURL
// are required; the proxy URLs are the optional local intermediary tried
// first on every call.
type SyncConfig struct {
	SaveURL      string
	ListURL      string
	ProxySaveURL string
	ProxyListURL string
	Timeout      time.Duration
}

// ImportConfig tunes the spreadsheet import heuristics.
type ImportConfig struct {
	MatchThreshold int
}

// Load reads labelstock.yaml (working dir or /etc/labelstock) and
// LABELSTOCK_* environment variables. Missing remote endpoint settings are a
// hard error: a station without them would silently hoard data.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("labelstock")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/labelstock")
	v.SetEnvPrefix("LABELSTOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("db.path", "labelstock.db")
	v.SetDefault("catalog.ttl", time.Minute)
	v.SetDefault("sync.timeout", 30*time.Second)
	v.SetDefault("import.match_threshold", 2)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("could not read config: %w", err)
		}
	}

	cfg := Config{
		ListenAddr: v.GetString("listen_addr"),
		DBPath:     v.GetString("db.path"),
		RedisAddr:  v.GetString("redis.addr"),
		AuthSecret: v.GetString("auth.secret"),
		CatalogTTL: v.GetDuration("catalog.ttl"),
		Sync: SyncConfig{
			SaveURL:      v.GetString("sync.save_url"),
			ListURL:      v.GetString("sync.list_url"),
			ProxySaveURL: v.GetString("sync.proxy_save_url"),
			ProxyListURL: v.GetString("sync.proxy_list_url"),
			Timeout:      v.GetDuration("sync.timeout"),
		},
		Import: ImportConfig{
			MatchThreshold: v.GetInt("import.match_threshold"),
		},
	}

	if cfg.Sync.SaveURL == "" {
		return Config{}, fmt.Errorf("sync.save_url is required (remote write endpoint)")
	}
	if cfg.Sync.ListURL == "" {
		return Config{}, fmt.Errorf("sync.list_url is required (remote read endpoint)")
	}

	return cfg, nil
}
