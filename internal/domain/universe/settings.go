package universe

// Settings holds the per-universe ruleset as published by the game server
type Settings struct {
	Name   string `json:"name" yaml:"name"`
	Galaxy string `json:"galaxy" yaml:"galaxy"`
	System string `json:"system" yaml:"system"`

	// Fleet speed multipliers
	WarFleetSpeed      float64 `json:"warFleetSpeed" yaml:"warFleetSpeed" validate:"gt=0"`
	PeacefulFleetSpeed float64 `json:"peacefulFleetSpeed" yaml:"peacefulFleetSpeed" validate:"gt=0"`
	HoldingFleetSpeed  float64 `json:"holdingFleetSpeed" yaml:"holdingFleetSpeed" validate:"gt=0"`

	Galaxies int `json:"galaxies" yaml:"galaxies" validate:"min=1"`

	// Share of destroyed ships/defenses turned into a debris field
	Fleet2Debris float64 `json:"fleet2debris" yaml:"fleet2debris" validate:"min=0,max=1"`
	Def2Debris   float64 `json:"def2debris" yaml:"def2debris" validate:"min=0,max=1"`

	DeutCosts     float64 `json:"deutCosts" yaml:"deutCosts" validate:"min=0"`
	StartDM       int     `json:"startDM" yaml:"startDM" validate:"min=0"`
	BonusFields   int     `json:"bonusFields" yaml:"bonusFields" validate:"min=0"`
	EconomySpeed  float64 `json:"economySpeed" yaml:"economySpeed" validate:"gt=0"`
	ResearchSpeed float64 `json:"researchSpeed" yaml:"researchSpeed" validate:"gt=0"`
	ACS           bool    `json:"ACS" yaml:"ACS"`
	ProbeStorage  int     `json:"probeStorage" yaml:"probeStorage" validate:"min=0"`
}
