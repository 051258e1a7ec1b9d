package shared

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vector is an immutable [metal, crystal, deuterium] amount
type Vector [3]float64

// NewVector creates a vector from its three components
func NewVector(metal, crystal, deuterium float64) Vector {
	return Vector{metal, crystal, deuterium}
}

// UnitVector returns a vector with amount in the slot of r and zero elsewhere.
// Energy has no slot and yields the zero vector.
func UnitVector(r Resource, amount float64) Vector {
	var v Vector
	if slot, ok := r.Slot(); ok {
		v[slot] = amount
	}
	return v
}

// Metal returns the metal component
func (v Vector) Metal() float64 { return v[0] }

// Crystal returns the crystal component
func (v Vector) Crystal() float64 { return v[1] }

// Deuterium returns the deuterium component
func (v Vector) Deuterium() float64 { return v[2] }

// Get returns the component for r, or 0 for resources outside the vector
func (v Vector) Get(r Resource) float64 {
	slot, ok := r.Slot()
	if !ok {
		return 0
	}
	return v[slot]
}

// Add returns the component-wise sum
func (v Vector) Add(other Vector) Vector {
	return Vector{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns the component-wise difference
func (v Vector) Sub(other Vector) Vector {
	return Vector{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Scale returns the vector multiplied by factor
func (v Vector) Scale(factor float64) Vector {
	return Vector{v[0] * factor, v[1] * factor, v[2] * factor}
}

// Sum returns the total of all components
func (v Vector) Sum() float64 {
	return v[0] + v[1] + v[2]
}

// Value returns the dot product with weights, used to express a vector in a
// single currency (e.g. metal units under a trade ratio)
func (v Vector) Value(weights Vector) float64 {
	return v[0]*weights[0] + v[1]*weights[1] + v[2]*weights[2]
}

// IsZero checks if every component is zero
func (v Vector) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Equal compares component-wise within an absolute tolerance
func (v Vector) Equal(other Vector, tolerance float64) bool {
	for i := range v {
		if math.Abs(v[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(metal=%.2f, crystal=%.2f, deuterium=%.2f)", v[0], v[1], v[2])
}

type vectorFields struct {
	Metal     float64 `json:"metal" yaml:"metal"`
	Crystal   float64 `json:"crystal" yaml:"crystal"`
	Deuterium float64 `json:"deuterium" yaml:"deuterium"`
}

// MarshalJSON encodes the vector as an object keyed by resource name
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(vectorFields{v[0], v[1], v[2]})
}

// UnmarshalJSON decodes the object form written by MarshalJSON
func (v *Vector) UnmarshalJSON(data []byte) error {
	var f vectorFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Vector{f.Metal, f.Crystal, f.Deuterium}
	return nil
}

// MarshalYAML encodes the vector as a mapping keyed by resource name
func (v Vector) MarshalYAML() (interface{}, error) {
	return vectorFields{v[0], v[1], v[2]}, nil
}
