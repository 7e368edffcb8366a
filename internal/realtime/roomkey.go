package realtime

import "strings"

// RoomKey derives the conversation room identifier for two participants.
// The identifiers are sorted lexicographically before joining, so both
// sides always compute the same key without server-side negotiation.
func RoomKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "-" + b
}
