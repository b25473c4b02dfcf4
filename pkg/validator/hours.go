package validator

import "time"

// mealBreakThreshold is the clock length at which a shift includes an unpaid
// 30-minute meal break.
const mealBreakThreshold = 6.0

// PaidHours converts a shift's clock duration into compensable hours. A
// single half-hour meal break is deducted once the shift is long enough to
// require one; shorter shifts are paid wall to wall. Fractions are preserved.
func PaidHours(start, end time.Time) float64 {
	clock := end.Sub(start).Hours()
	if clock >= mealBreakThreshold {
		return clock - 0.5
	}
	return clock
}
