package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".ledgerline"
	envPrefix  = "LEDGERLINE"
	logFile    = "ledgerline.log"

	KeyContentPath     = "content.path"
	KeyRevealMsPerChar = "reveal.ms_per_char"
	KeyNotifyStagger   = "notify.stagger_ms"
	KeyNotifyVisible   = "notify.visible_ms"
	KeyNotifyFade      = "notify.fade_ms"
	KeyFlashMs         = "flash.ms"
	KeyLogLevel        = "log.level"
	KeyLogEncoding     = "log.encoding"
	KeyLogPath         = "log.path"
)

// Config is the resolved runtime configuration.
type Config struct {
	ContentPath         string
	RevealInterval      time.Duration
	NotificationStagger time.Duration
	NotificationVisible time.Duration
	NotificationFadeOut time.Duration
	FlashDuration       time.Duration
	LogLevel            string
	LogEncoding         string
	LogPath             string
}

// Load reads ~/.ledgerline/config.toml into v, layered under LEDGERLINE_*
// environment variables. A missing file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetDefault(KeyContentPath, "")
	v.SetDefault(KeyRevealMsPerChar, 35)
	v.SetDefault(KeyNotifyStagger, 500)
	v.SetDefault(KeyNotifyVisible, 3000)
	v.SetDefault(KeyNotifyFade, 300)
	v.SetDefault(KeyFlashMs, 2000)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogEncoding, "json")
	v.SetDefault(KeyLogPath, filepath.Join(dir, logFile))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		ContentPath:         v.GetString(KeyContentPath),
		RevealInterval:      millis(v.GetInt(KeyRevealMsPerChar)),
		NotificationStagger: millis(v.GetInt(KeyNotifyStagger)),
		NotificationVisible: millis(v.GetInt(KeyNotifyVisible)),
		NotificationFadeOut: millis(v.GetInt(KeyNotifyFade)),
		FlashDuration:       millis(v.GetInt(KeyFlashMs)),
		LogLevel:            v.GetString(KeyLogLevel),
		LogEncoding:         v.GetString(KeyLogEncoding),
		LogPath:             v.GetString(KeyLogPath),
	}

	return cfg, nil
}

func millis(n int) time.Duration {
	if n < 0 {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}
