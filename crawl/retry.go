package crawl

import (
	"regexp"
	"strconv"
	"time"

	"github.com/mwalkowski/laradoc"
)

// DefaultRetryDelay is used when a rate-limit rejection carries no
// parsable retry hint.
const DefaultRetryDelay = 35 * time.Second

// Scrape services phrase their rate-limit rejections as either
// "... retry after 32s ..." or "... 32s, ...".
var (
	retryAfterRe = regexp.MustCompile(`retry after (\d+)s`)
	secondsRe    = regexp.MustCompile(`(\d+)s,`)
)

// ParseRetryDelay extracts the suggested retry interval from a rate-limit
// error message. Messages without a recognizable hint yield
// DefaultRetryDelay.
func ParseRetryDelay(message string) time.Duration {
	if m := retryAfterRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	if m := secondsRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return DefaultRetryDelay
}

// RateLimited reports whether err is a rate-limit rejection worth a
// delayed retry.
func RateLimited(err error) bool {
	return laradoc.ErrorCode(err) == laradoc.EUNAVAILABLE
}
