package models

import "math"

// RoundMoney quantizes to 2 decimal places, matching the server's
// decimal handling for bills and snapshots.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
