package update

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DatabasePath            string `yaml:"database_path"`
	LogPath                 string `yaml:"log_path"`
	FocusMinutes            int    `yaml:"focus_minutes"`
	ShortBreakMinutes       int    `yaml:"short_break_minutes"`
	LongBreakMinutes        int    `yaml:"long_break_minutes"`
	SessionsBeforeLongBreak int    `yaml:"sessions_before_long_break"`
	ReminderBuffer          int    `yaml:"reminder_buffer"`
	AIAPIKey                string `yaml:"ai_api_key"`
	AIBaseURL               string `yaml:"ai_base_url"`
	AIModel                 string `yaml:"ai_model"`
	AITimeoutSeconds        int    `yaml:"ai_timeout_seconds"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:            "productivity.db",
		LogPath:                 "productivity.log",
		FocusMinutes:            25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
		ReminderBuffer:          64,
		AITimeoutSeconds:        30,
	}
}

// LoadRuntimeConfig layers an optional YAML file over the defaults. A
// missing file is not an error; a file that exists but will not parse
// is.
func LoadRuntimeConfig(path string) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RuntimeConfigFromEnv applies PRODUCTIVITY_* overrides on top of the
// given base. Environment wins over the file.
func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("PRODUCTIVITY_DB_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvString("PRODUCTIVITY_LOG_PATH"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvInt("PRODUCTIVITY_FOCUS_MINUTES"); ok && v > 0 {
		cfg.FocusMinutes = v
	}
	if v, ok := getEnvInt("PRODUCTIVITY_SHORT_BREAK_MINUTES"); ok && v > 0 {
		cfg.ShortBreakMinutes = v
	}
	if v, ok := getEnvInt("PRODUCTIVITY_LONG_BREAK_MINUTES"); ok && v > 0 {
		cfg.LongBreakMinutes = v
	}
	if v, ok := getEnvInt("PRODUCTIVITY_SESSIONS_BEFORE_LONG_BREAK"); ok && v > 0 {
		cfg.SessionsBeforeLongBreak = v
	}
	if v, ok := getEnvInt("PRODUCTIVITY_REMINDER_BUFFER"); ok && v > 0 {
		cfg.ReminderBuffer = v
	}
	if v, ok := getEnvString("PRODUCTIVITY_AI_API_KEY"); ok {
		cfg.AIAPIKey = v
	}
	if v, ok := getEnvString("PRODUCTIVITY_AI_BASE_URL"); ok {
		cfg.AIBaseURL = v
	}
	if v, ok := getEnvString("PRODUCTIVITY_AI_MODEL"); ok {
		cfg.AIModel = v
	}
	if v, ok := getEnvInt("PRODUCTIVITY_AI_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.AITimeoutSeconds = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
