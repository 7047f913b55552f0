package timeutil

import (
	"regexp"
	"strconv"
	"time"
)

var shortDuration = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// ParseShortDuration parses the compact "#h#m" form: "2h30m", "45m",
// "3h", "". Missing groups count as zero. Input that does not match
// the shape also parses as zero; the permissive behavior is deliberate
// and kept for compatibility with existing callers.
func ParseShortDuration(s string) time.Duration {
	m := shortDuration.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	var d time.Duration
	if m[1] != "" {
		hours, _ := strconv.Atoi(m[1])
		d += time.Duration(hours) * time.Hour
	}
	if m[2] != "" {
		mins, _ := strconv.Atoi(m[2])
		d += time.Duration(mins) * time.Minute
	}
	return d
}
