package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds application level configuration. Precedence, lowest first:
// built-in defaults, TOML config file, environment, flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	AdNetworkAddress string
	JWTSecret        string

	// Points economy.
	MinWithdrawPoints  int64
	ExchangeRatePer100 int64
	CheckInBaseReward  int64
	MaxStreakDays      int
	ReferralReward     int64

	// Reminder worker.
	ReminderPollInterval time.Duration
	DueSoonWindow        time.Duration
	WorkerPoolSize       int
	MaxReminderBatch     int

	NotificationDedupWindow time.Duration
	ShutdownTimeout         time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultJWTSecret          = "change-me-in-production"
	defaultMinWithdrawPoints  = 100
	defaultExchangeRatePer100 = 500
	defaultCheckInBaseReward  = 5
	defaultMaxStreakDays      = 7
	defaultReferralReward     = 50
	defaultReminderInterval   = time.Hour
	defaultDueSoonWindow      = 72 * time.Hour
	defaultWorkerPoolSize     = 4
	defaultMaxReminderBatch   = 32
	defaultDedupWindow        = 24 * time.Hour
	defaultShutdownTimeout    = 10 * time.Second
)

// fileConfig mirrors the optional TOML config file. Zero values mean
// "not set" and leave the default in place.
type fileConfig struct {
	RunAddress         string `toml:"run_address"`
	DatabaseURI        string `toml:"database_uri"`
	AdNetworkAddress   string `toml:"ad_network_address"`
	JWTSecret          string `toml:"jwt_secret"`
	MinWithdrawPoints  int64  `toml:"min_withdraw_points"`
	ExchangeRatePer100 int64  `toml:"exchange_rate_per_100"`
	CheckInBaseReward  int64  `toml:"check_in_base_reward"`
	MaxStreakDays      int    `toml:"max_streak_days"`
	ReferralReward     int64  `toml:"referral_reward"`
	ReminderInterval   string `toml:"reminder_poll_interval"`
	DueSoonWindow      string `toml:"due_soon_window"`
	WorkerPoolSize     int    `toml:"worker_pool_size"`
	MaxReminderBatch   int    `toml:"reminder_batch_size"`
	DedupWindow        string `toml:"notification_dedup_window"`
	ShutdownTimeout    string `toml:"shutdown_timeout"`
}

// Load parses configuration from the optional config file, environment
// variables, and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:              defaultRunAddress,
		JWTSecret:               defaultJWTSecret,
		MinWithdrawPoints:       defaultMinWithdrawPoints,
		ExchangeRatePer100:      defaultExchangeRatePer100,
		CheckInBaseReward:       defaultCheckInBaseReward,
		MaxStreakDays:           defaultMaxStreakDays,
		ReferralReward:          defaultReferralReward,
		ReminderPollInterval:    defaultReminderInterval,
		DueSoonWindow:           defaultDueSoonWindow,
		WorkerPoolSize:          defaultWorkerPoolSize,
		MaxReminderBatch:        defaultMaxReminderBatch,
		NotificationDedupWindow: defaultDedupWindow,
		ShutdownTimeout:         defaultShutdownTimeout,
	}

	configPath := peekConfigPath(args, lookup)
	if configPath != "" {
		if err := applyFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg, lookup)

	fs := flag.NewFlagSet("finpoint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		reminderIntervalStr = cfg.ReminderPollInterval.String()
		dueSoonWindowStr    = cfg.DueSoonWindow.String()
		dedupWindowStr      = cfg.NotificationDedupWindow.String()
		shutdownTimeoutStr  = cfg.ShutdownTimeout.String()
		configFlag          string
	)

	fs.StringVar(&configFlag, "config", configPath, "Path to TOML config file")
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AdNetworkAddress, "r", cfg.AdNetworkAddress, "Ad network base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.Int64Var(&cfg.MinWithdrawPoints, "min-withdraw", cfg.MinWithdrawPoints, "Minimum points per withdrawal request")
	fs.Int64Var(&cfg.ExchangeRatePer100, "exchange-rate", cfg.ExchangeRatePer100, "Cash value of 100 points in minor units")
	fs.Int64Var(&cfg.CheckInBaseReward, "checkin-reward", cfg.CheckInBaseReward, "Base points per check-in day")
	fs.IntVar(&cfg.MaxStreakDays, "max-streak", cfg.MaxStreakDays, "Streak length at which the reward caps")
	fs.Int64Var(&cfg.ReferralReward, "referral-reward", cfg.ReferralReward, "Points earned per successful referral")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent reminder workers")
	fs.IntVar(&cfg.MaxReminderBatch, "reminder-batch", cfg.MaxReminderBatch, "Maximum debt notes per reminder scan")
	fs.StringVar(&reminderIntervalStr, "reminder-interval", reminderIntervalStr, "Interval between reminder scans")
	fs.StringVar(&dueSoonWindowStr, "due-window", dueSoonWindowStr, "How far ahead to warn about repayment dates")
	fs.StringVar(&dedupWindowStr, "dedup-window", dedupWindowStr, "Keyless notification dedup window")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ReminderPollInterval, err = time.ParseDuration(reminderIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reminder interval: %w", err)
	}
	if cfg.DueSoonWindow, err = time.ParseDuration(dueSoonWindowStr); err != nil {
		return nil, fmt.Errorf("invalid due-soon window: %w", err)
	}
	if cfg.NotificationDedupWindow, err = time.ParseDuration(dedupWindowStr); err != nil {
		return nil, fmt.Errorf("invalid dedup window: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	sanitize(cfg)

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}
	if cfg.AdNetworkAddress == "" {
		return nil, fmt.Errorf("ad network address must be provided")
	}

	return cfg, nil
}

// peekConfigPath resolves the config file path before regular flag parsing
// so file values can sit below env and flags.
func peekConfigPath(args []string, lookup envLookup) string {
	path := getString(lookup, "CONFIG_FILE", "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				path = args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-config="):
			path = strings.TrimPrefix(arg, "-config=")
		}
	}
	return path
}

func applyFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	setString(&cfg.RunAddress, fc.RunAddress)
	setString(&cfg.DatabaseURI, fc.DatabaseURI)
	setString(&cfg.AdNetworkAddress, fc.AdNetworkAddress)
	setString(&cfg.JWTSecret, fc.JWTSecret)
	setInt64(&cfg.MinWithdrawPoints, fc.MinWithdrawPoints)
	setInt64(&cfg.ExchangeRatePer100, fc.ExchangeRatePer100)
	setInt64(&cfg.CheckInBaseReward, fc.CheckInBaseReward)
	setInt(&cfg.MaxStreakDays, fc.MaxStreakDays)
	setInt64(&cfg.ReferralReward, fc.ReferralReward)
	setInt(&cfg.WorkerPoolSize, fc.WorkerPoolSize)
	setInt(&cfg.MaxReminderBatch, fc.MaxReminderBatch)

	for _, d := range []struct {
		raw  string
		dst  *time.Duration
		name string
	}{
		{fc.ReminderInterval, &cfg.ReminderPollInterval, "reminder_poll_interval"},
		{fc.DueSoonWindow, &cfg.DueSoonWindow, "due_soon_window"},
		{fc.DedupWindow, &cfg.NotificationDedupWindow, "notification_dedup_window"},
		{fc.ShutdownTimeout, &cfg.ShutdownTimeout, "shutdown_timeout"},
	} {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("config file %s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	return nil
}

func applyEnv(cfg *Config, lookup envLookup) {
	cfg.RunAddress = getString(lookup, "RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getString(lookup, "DATABASE_URI", cfg.DatabaseURI)
	cfg.AdNetworkAddress = getString(lookup, "AD_NETWORK_ADDRESS", cfg.AdNetworkAddress)
	cfg.JWTSecret = getString(lookup, "JWT_SECRET", cfg.JWTSecret)
	cfg.MinWithdrawPoints = getInt64(lookup, "MIN_WITHDRAW_POINTS", cfg.MinWithdrawPoints)
	cfg.ExchangeRatePer100 = getInt64(lookup, "EXCHANGE_RATE_PER_100", cfg.ExchangeRatePer100)
	cfg.CheckInBaseReward = getInt64(lookup, "CHECKIN_BASE_REWARD", cfg.CheckInBaseReward)
	cfg.MaxStreakDays = getInt(lookup, "MAX_STREAK_DAYS", cfg.MaxStreakDays)
	cfg.ReferralReward = getInt64(lookup, "REFERRAL_REWARD", cfg.ReferralReward)
	cfg.ReminderPollInterval = getDuration(lookup, "REMINDER_POLL_INTERVAL", cfg.ReminderPollInterval)
	cfg.DueSoonWindow = getDuration(lookup, "DUE_SOON_WINDOW", cfg.DueSoonWindow)
	cfg.WorkerPoolSize = getInt(lookup, "WORKER_POOL_SIZE", cfg.WorkerPoolSize)
	cfg.MaxReminderBatch = getInt(lookup, "REMINDER_BATCH_SIZE", cfg.MaxReminderBatch)
	cfg.NotificationDedupWindow = getDuration(lookup, "NOTIFICATION_DEDUP_WINDOW", cfg.NotificationDedupWindow)
	cfg.ShutdownTimeout = getDuration(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
}

func sanitize(cfg *Config) {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}
	if cfg.MaxReminderBatch <= 0 {
		cfg.MaxReminderBatch = defaultMaxReminderBatch
	}
	if cfg.ReminderPollInterval <= 0 {
		cfg.ReminderPollInterval = defaultReminderInterval
	}
	if cfg.DueSoonWindow <= 0 {
		cfg.DueSoonWindow = defaultDueSoonWindow
	}
	if cfg.NotificationDedupWindow <= 0 {
		cfg.NotificationDedupWindow = defaultDedupWindow
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.MinWithdrawPoints <= 0 {
		cfg.MinWithdrawPoints = defaultMinWithdrawPoints
	}
	if cfg.ExchangeRatePer100 <= 0 {
		cfg.ExchangeRatePer100 = defaultExchangeRatePer100
	}
	if cfg.CheckInBaseReward <= 0 {
		cfg.CheckInBaseReward = defaultCheckInBaseReward
	}
	if cfg.MaxStreakDays <= 0 {
		cfg.MaxStreakDays = defaultMaxStreakDays
	}
	if cfg.ReferralReward < 0 {
		cfg.ReferralReward = defaultReferralReward
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setInt64(dst *int64, v int64) {
	if v != 0 {
		*dst = v
	}
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
