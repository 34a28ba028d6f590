package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults; a local sqlite file keeps single-user play self-contained
	if cfg.Database.Type == "" {
		cfg.Database.Type = DriverSQLite
	}
	if cfg.Database.Type == DriverSQLite && cfg.Database.Path == "" {
		cfg.Database.Path = "studiosim.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "studiosim"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "studiosim"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Game defaults
	if cfg.Game.StartingMoney == 0 {
		cfg.Game.StartingMoney = 1000
	}
	if cfg.Game.SigningFeeMultiplier == 0 {
		cfg.Game.SigningFeeMultiplier = 2
	}
	if cfg.Game.SalaryIntervalDays == 0 {
		cfg.Game.SalaryIntervalDays = 7
	}
	if cfg.Game.CandidatePoolSize == 0 {
		cfg.Game.CandidatePoolSize = 3
	}
	if cfg.Game.ProjectPoolSize == 0 {
		cfg.Game.ProjectPoolSize = 3
	}
	if cfg.Game.StartingFocus.IsZero() {
		cfg.Game.StartingFocus = FocusConfig{Performance: 34, SoundCapture: 33, Layering: 33}
	}
}
