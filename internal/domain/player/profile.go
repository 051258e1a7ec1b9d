package player

// Known player classes. Class tags are free-form; only ClassCollector
// currently grants production bonuses.
const (
	ClassCollector  = "Collector"
	ClassGeneral    = "General"
	ClassDiscoverer = "Discoverer"
)

const (
	collectorMineBonus   = 0.25
	collectorEnergyBonus = 0.10
)

// Profile is a player's class together with the bonuses it grants
type Profile struct {
	Class       string
	MineBonus   float64
	EnergyBonus float64
}

// NewProfile derives the class bonuses from the class tag
func NewProfile(class string) *Profile {
	p := &Profile{Class: class}
	if class == ClassCollector {
		p.MineBonus = collectorMineBonus
		p.EnergyBonus = collectorEnergyBonus
	}
	return p
}
