package utils

import (
	"strconv"
	"time"
)

// ToDuration converts a number of seconds into a time.Duration.
func ToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// ToDurationMs converts a number of milliseconds into a time.Duration.
func ToDurationMs(millis int) time.Duration {
	return time.Duration(millis) * time.Millisecond
}

// JoinInts renders values separated by sep, e.g. "1,2,3".
func JoinInts[T ~int | ~int64 | ~int32](values []T, sep string) string {
	if len(values) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(values)*4)
	for i, v := range values {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}
