package timex

import "time"

// Ms returns d in whole milliseconds; negative durations read as 0.
func Ms(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}
