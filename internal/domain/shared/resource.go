package shared

import (
	"fmt"
	"strings"
)

// Resource identifies one of the planet resources.
//
// The ordinals match the game's historical numbering, which skips 3.
// Never index a Vector with the ordinal; use Slot instead.
type Resource int

const (
	Metal     Resource = 0
	Crystal   Resource = 1
	Deuterium Resource = 2
	Energy    Resource = 4
)

// MinedResources returns the resources produced by mines, in vector order
func MinedResources() []Resource {
	return []Resource{Metal, Crystal, Deuterium}
}

// Slot returns the Vector index holding this resource.
// Energy is not part of the vector and reports ok=false.
func (r Resource) Slot() (int, bool) {
	switch r {
	case Metal:
		return 0, true
	case Crystal:
		return 1, true
	case Deuterium:
		return 2, true
	default:
		return 0, false
	}
}

// IsMined checks whether the resource has a mine producing it
func (r Resource) IsMined() bool {
	_, ok := r.Slot()
	return ok
}

func (r Resource) String() string {
	switch r {
	case Metal:
		return "metal"
	case Crystal:
		return "crystal"
	case Deuterium:
		return "deuterium"
	case Energy:
		return "energy"
	default:
		return fmt.Sprintf("Resource(%d)", int(r))
	}
}

// ParseResource converts a resource name into a Resource
func ParseResource(name string) (Resource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "metal":
		return Metal, nil
	case "crystal":
		return Crystal, nil
	case "deuterium", "deut":
		return Deuterium, nil
	case "energy":
		return Energy, nil
	default:
		return 0, NewValidationError("resource", fmt.Sprintf("unknown resource %q", name))
	}
}
