package config

// UniverseConfig points at the universe ruleset to compute against
type UniverseConfig struct {
	// Path to the universe JSON document
	Path string `mapstructure:"path" json:"path" yaml:"path"`
}

// PlayerConfig holds defaults for the player profile
type PlayerConfig struct {
	// Player class tag, e.g. "Collector"
	Class string `mapstructure:"class" json:"class" yaml:"class" validate:"playerclass"`
}

// EconomyConfig holds valuation settings used by upgrade recommendations
type EconomyConfig struct {
	TradeRatio TradeRatioConfig `mapstructure:"trade_ratio" json:"trade_ratio" yaml:"trade_ratio"`

	// Default upper level for mine tables
	MaxLevel int `mapstructure:"max_level" json:"max_level" yaml:"max_level" validate:"min=1,max=200"`
}

// TradeRatioConfig is the metal:crystal:deuterium exchange rate
type TradeRatioConfig struct {
	Metal     float64 `mapstructure:"metal" json:"metal" yaml:"metal" validate:"gt=0"`
	Crystal   float64 `mapstructure:"crystal" json:"crystal" yaml:"crystal" validate:"gt=0"`
	Deuterium float64 `mapstructure:"deuterium" json:"deuterium" yaml:"deuterium" validate:"gt=0"`
}
