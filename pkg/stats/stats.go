// Package stats holds the shared arithmetic used by dashboard aggregators.
package stats

import "math"

// Rate returns round(part/total*100). It is 0 when total is 0 and always
// within [0,100] for part <= total.
func Rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
