package conv

import (
	"fmt"
	"math"
)

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	// On 64-bit systems int covers all of int64; on 32-bit it does not.
	if v < int64(math.MinInt) || v > int64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (out of range)", v)
	}
	return int(v), nil
}
