package vocal

import (
	"strconv"
	"strings"
)

// cardinals maps spoken cardinal numbers to their values. Transcribers usually
// write digits already; these are the words they still tend to spell out.
var cardinals = map[string]int{
	"zero": 0, "nought": 0,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// spokenNumber returns the decimal form of a spelled-out number: a single
// cardinal, or tens and units joined by a hyphen as in "twenty-five".
func spokenNumber(word string) (string, bool) {
	word = strings.ToLower(word)
	if n, ok := cardinals[word]; ok {
		return strconv.Itoa(n), true
	}
	tens, units, ok := strings.Cut(word, "-")
	if !ok {
		return "", false
	}
	t, ok := cardinals[tens]
	if !ok || t < 20 || t%10 != 0 {
		return "", false
	}
	u, ok := cardinals[units]
	if !ok || u < 1 || u > 9 {
		return "", false
	}
	return strconv.Itoa(t + u), true
}
