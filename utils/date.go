package utils

import "time"

// FromUnixSeconds converts an epoch-seconds timestamp to UTC time.
func FromUnixSeconds(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}
