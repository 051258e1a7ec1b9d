package utils

import "math"

// RoundTo rounds value to the given number of decimal places
func RoundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// ClampMin returns value, or min when value is below it
func ClampMin(value, min float64) float64 {
	if value < min {
		return min
	}
	return value
}
