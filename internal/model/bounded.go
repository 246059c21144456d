package model

import "errors"

// ErrOverflow is returned when an append would exceed a buffer's capacity.
// The destination is guaranteed untouched in that case.
var ErrOverflow = errors.New("content would exceed capacity")

// Truncate is a bounded copy: it keeps at most capacity-1 bytes of s,
// leaving room for the terminator the capacity accounts for. It never
// fails; over-long input is silently cut.
func Truncate(s string, capacity int) string {
	if capacity <= 0 {
		return ""
	}
	if len(s) < capacity {
		return s
	}
	return s[:capacity-1]
}

// AppendLine joins line onto content with a single "\n" separator and
// returns the result. The capacity check is conservative and exact: it
// requires room for the separator and terminator up front, so a passing
// append is never truncated and a failing one changes nothing.
func AppendLine(content, line string, capacity int) (string, error) {
	if len(content)+len(line)+2 > capacity {
		return content, ErrOverflow
	}
	if len(content) > 0 {
		return content + "\n" + line, nil
	}
	return line, nil
}
