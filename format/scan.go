package format

import "strings"

// IndexForward returns the index of the first c in rs at or after from.
// The scan gives up with -1 when it meets any rune of breaks first.
func IndexForward(rs []rune, from int, c rune, breaks string) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(rs); i++ {
		if rs[i] == c {
			return i
		}
		if strings.ContainsRune(breaks, rs[i]) {
			return -1
		}
	}
	return -1
}

// IndexBackward returns the index of the last c in rs at or before from.
// The scan gives up with -1 when it meets any rune of breaks first.
func IndexBackward(rs []rune, from int, c rune, breaks string) int {
	if from >= len(rs) {
		from = len(rs) - 1
	}
	for i := from; i >= 0; i-- {
		if rs[i] == c {
			return i
		}
		if strings.ContainsRune(breaks, rs[i]) {
			return -1
		}
	}
	return -1
}
