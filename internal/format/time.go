package format

import "time"

// filetimeEpochDiff is the number of 100ns ticks between the FILETIME epoch
// (1601-01-01) and the Unix epoch (1970-01-01).
const filetimeEpochDiff = 116444736000000000

// FiletimeToUnix converts a Windows FILETIME (100ns ticks since 1601-01-01
// UTC) to seconds since the Unix epoch. ok is false for the zero FILETIME,
// which the format uses to mean "absent".
func FiletimeToUnix(v uint64) (sec int64, ok bool) {
	if v == 0 {
		return 0, false
	}
	ticks := int64(v) - filetimeEpochDiff
	return ticks / 10_000_000, true
}

// FiletimeToTime converts a FILETIME to a time.Time, clamped to the zero
// value when absent.
func FiletimeToTime(v uint64) time.Time {
	sec, ok := FiletimeToUnix(v)
	if !ok {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
