package config

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Universe defaults
	if cfg.Universe.Path == "" {
		cfg.Universe.Path = "universe.json"
	}

	// Economy defaults (3:2:1 trade ratio)
	if cfg.Economy.TradeRatio.Metal == 0 {
		cfg.Economy.TradeRatio.Metal = 3
	}
	if cfg.Economy.TradeRatio.Crystal == 0 {
		cfg.Economy.TradeRatio.Crystal = 2
	}
	if cfg.Economy.TradeRatio.Deuterium == 0 {
		cfg.Economy.TradeRatio.Deuterium = 1
	}
	if cfg.Economy.MaxLevel == 0 {
		cfg.Economy.MaxLevel = 40
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
