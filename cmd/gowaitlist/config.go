package main

import (
	"fmt"
	"time"

	"github.com/Shopify/gowaitlist/internal/fallback"
	"github.com/Shopify/gowaitlist/internal/orchestrator"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Build-time defaults. A YAML file passed with --config may override any of them.
const (
	defaultLogLevel = "info"

	// Empty keeps metrics as no-ops; point at a DataDog agent, e.g. "127.0.0.1:8125".
	defaultStatsdAddr = ""

	defaultAPIBaseURL    = "https://api.deeperthanskin.store"
	defaultAppSlug       = "deeperthanskin-relaunch"
	defaultJoinPath      = "/v1/waitlist/join"
	defaultNotifyPath    = "/v1/email/send"
	defaultCountPath     = "/v1/waitlist/count"
	defaultExportPath    = "/v1/waitlist/export"
	defaultAPITimeout    = 10 * time.Second
	defaultCodeInQuery   = false
	defaultThrottleWin   = time.Minute
	defaultMaxPerWindow  = 20
	defaultSubmitterType = "waitlist_api"

	defaultFallbackMode    = "both"
	defaultAutoOpenMailto  = false
	defaultMailtoOpenDelay = 900 * time.Millisecond

	defaultStoreType = "memory"
	defaultRedisAddr = "localhost:6379"

	// RFC 3339 with offset; empty renders the countdown as TBD.
	defaultLaunchDate = "2026-03-15T10:00:00-05:00"
)

type APIConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	AppSlug              string        `mapstructure:"app_slug"`
	JoinPath             string        `mapstructure:"join_path"`
	NotifyPath           string        `mapstructure:"notify_path"`
	CountPath            string        `mapstructure:"count_path"`
	ExportPath           string        `mapstructure:"export_path"`
	Timeout              time.Duration `mapstructure:"timeout"`
	ExportCodeInQuery    bool          `mapstructure:"export_code_in_query"`
	ThrottleWindow       time.Duration `mapstructure:"throttle_window"`
	MaxRequestsPerWindow int           `mapstructure:"max_requests_per_window"`
}

type SignupConfig struct {
	SubmitterType     string `mapstructure:"submitter_type"`
	SourceTag         string `mapstructure:"source_tag"`
	FromName          string `mapstructure:"from_name"`
	IncentiveLine     string `mapstructure:"incentive_line"`
	ShowFailureDetail bool   `mapstructure:"show_failure_detail"`
}

type FallbackConfig struct {
	Mode            string        `mapstructure:"mode"`
	AutoOpenMailto  bool          `mapstructure:"auto_open_mailto"`
	MailtoOpenDelay time.Duration `mapstructure:"mailto_open_delay"`
	Recipient       string        `mapstructure:"recipient"`
	Subject         string        `mapstructure:"subject"`
	Incentive       string        `mapstructure:"incentive"`
}

type PreferencesConfig struct {
	StoreType string `mapstructure:"store_type"`
	RedisAddr string `mapstructure:"redis_addr"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type Config struct {
	LogLevel    string            `mapstructure:"log_level"`
	StatsdAddr  string            `mapstructure:"statsd_addr"`
	LaunchDate  string            `mapstructure:"launch_date"`
	API         APIConfig         `mapstructure:"api"`
	Signup      SignupConfig      `mapstructure:"signup"`
	Fallback    FallbackConfig    `mapstructure:"fallback"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("statsd_addr", defaultStatsdAddr)
	v.SetDefault("launch_date", defaultLaunchDate)

	v.SetDefault("api.base_url", defaultAPIBaseURL)
	v.SetDefault("api.app_slug", defaultAppSlug)
	v.SetDefault("api.join_path", defaultJoinPath)
	v.SetDefault("api.notify_path", defaultNotifyPath)
	v.SetDefault("api.count_path", defaultCountPath)
	v.SetDefault("api.export_path", defaultExportPath)
	v.SetDefault("api.timeout", defaultAPITimeout)
	v.SetDefault("api.export_code_in_query", defaultCodeInQuery)
	v.SetDefault("api.throttle_window", defaultThrottleWin)
	v.SetDefault("api.max_requests_per_window", defaultMaxPerWindow)

	v.SetDefault("signup.submitter_type", defaultSubmitterType)
	v.SetDefault("signup.source_tag", fallback.DefaultSourceTag)
	v.SetDefault("signup.from_name", "")
	v.SetDefault("signup.incentive_line", orchestrator.DefaultIncentiveLine)
	v.SetDefault("signup.show_failure_detail", false)

	v.SetDefault("fallback.mode", defaultFallbackMode)
	v.SetDefault("fallback.auto_open_mailto", defaultAutoOpenMailto)
	v.SetDefault("fallback.mailto_open_delay", defaultMailtoOpenDelay)
	v.SetDefault("fallback.recipient", fallback.DefaultRecipient)
	v.SetDefault("fallback.subject", fallback.DefaultSubject)
	v.SetDefault("fallback.incentive", fallback.DefaultIncentive)

	v.SetDefault("preferences.store_type", defaultStoreType)
	v.SetDefault("preferences.redis_addr", defaultRedisAddr)
	v.SetDefault("preferences.key_prefix", defaultAppSlug)
}

// loadConfig returns the build-time defaults, overlaid with configPath when one is given.
func loadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed reading config file '%s': %w", configPath, err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed parsing config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validateConfig(config *Config) error {
	if _, err := fallback.ParseMode(config.Fallback.Mode); err != nil {
		return err
	}
	if config.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout should be > 0 but found %s", config.API.Timeout)
	}
	if config.API.MaxRequestsPerWindow < 0 {
		return fmt.Errorf("api.max_requests_per_window should be >= 0 but found %d", config.API.MaxRequestsPerWindow)
	}
	if config.API.AppSlug == "" {
		return fmt.Errorf("api.app_slug must be set")
	}
	switch config.Signup.SubmitterType {
	case "waitlist_api", "noop":
	default:
		return fmt.Errorf("signup.submitter_type must be one of: {waitlist_api, noop}")
	}
	switch config.Preferences.StoreType {
	case "memory", "redis":
	default:
		return fmt.Errorf("preferences.store_type must be one of: {memory, redis}")
	}
	return nil
}

func setLogging(logLevel string) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	switch logLevel {
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		return fmt.Errorf("log level must be one of: {disabled, debug, info, warn}")
	}
	return nil
}
